package usercenter

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// DefaultSessionCookieName carries the session id between requests.
const DefaultSessionCookieName = "usercenter_session"

// Envelope codes returned to clients.
const (
	CodeSuccess     = 0
	CodeParamsError = 40000
	CodeNullError   = 40001
	CodeNotLogin    = 40100
	CodeNoAuth      = 40101
	CodeSystemError = 50000
)

// BaseResponse is the envelope every endpoint returns.
type BaseResponse struct {
	Code        int    `json:"code"`
	Data        any    `json:"data"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// Success wraps data in a success envelope.
func Success(data any) BaseResponse {
	return BaseResponse{Code: CodeSuccess, Data: data, Message: "ok"}
}

// Failure maps a failure to its envelope code and safe message.
func Failure(err error) BaseResponse {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return BaseResponse{
			Code:        CodeSystemError,
			Message:     "system error",
			Description: err.Error(),
		}
	}

	return BaseResponse{
		Code:        envelopeCode(richErr),
		Message:     richErr.Message,
		Description: richErr.TextCode,
	}
}

func envelopeCode(err *goerrors.Error) int {
	switch err.Category {
	case goerrors.CategoryValidation, goerrors.CategoryBadInput, goerrors.CategoryConflict:
		return CodeParamsError
	case goerrors.CategoryAuth:
		return CodeNotLogin
	case goerrors.CategoryAuthz:
		return CodeNoAuth
	case goerrors.CategoryNotFound:
		return CodeNullError
	default:
		return CodeSystemError
	}
}

type UserControllerRoutes struct {
	Register string
	Login    string
	Logout   string
	Current  string
	Search   string
	Delete   string
}

type UserController struct {
	Debug    bool
	Logger   Logger
	Config   Config
	Service  *UserService
	Sessions *SessionStore
	Routes   *UserControllerRoutes
}

type UserControllerOption func(*UserController) *UserController

// NewUserController builds a controller; a UserService is mandatory.
func NewUserController(opts ...UserControllerOption) *UserController {
	c := &UserController{
		Logger: defLogger{},
		Config: SimpleConfig{},
		Routes: &UserControllerRoutes{
			Register: "/user/register",
			Login:    "/user/login",
			Logout:   "/user/logout",
			Current:  "/user/current",
			Search:   "/user/search",
			Delete:   "/user/delete",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Service == nil {
		panic("Missing UserService in user controller...")
	}

	if c.Sessions == nil {
		c.Sessions = NewSessionStore()
	}

	return c
}

func WithService(s *UserService) UserControllerOption {
	return func(c *UserController) *UserController {
		c.Service = s
		return c
	}
}

func WithSessionStore(store *SessionStore) UserControllerOption {
	return func(c *UserController) *UserController {
		c.Sessions = store
		return c
	}
}

func WithConfig(cfg Config) UserControllerOption {
	return func(c *UserController) *UserController {
		c.Config = cfg
		return c
	}
}

func WithControllerLogger(l Logger) UserControllerOption {
	return func(c *UserController) *UserController {
		c.Logger = l
		return c
	}
}

func WithDebug(debug bool) UserControllerOption {
	return func(c *UserController) *UserController {
		c.Debug = debug
		return c
	}
}

// RegisterUserRoutes mounts the user endpoints on the app.
func RegisterUserRoutes(app *fiber.App, opts ...UserControllerOption) *UserController {
	controller := NewUserController(opts...)

	app.Post(controller.Routes.Register, controller.RegisterPost)
	app.Post(controller.Routes.Login, controller.LoginPost)
	app.Post(controller.Routes.Logout, controller.LogoutPost)
	app.Get(controller.Routes.Current, controller.CurrentGet)
	app.Get(controller.Routes.Search, controller.SearchGet)
	app.Post(controller.Routes.Delete, controller.DeletePost)

	return controller
}

func (a *UserController) RegisterPost(c *fiber.Ctx) error {
	payload := new(RegisterPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("register parse payload", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(Failure(ErrMissingInput))
	}

	id, err := a.Service.Register(c.UserContext(), payload.Account, payload.Password, payload.ConfirmPassword, payload.PlanetCode)
	if err != nil {
		return a.renderError(c, err)
	}

	return c.JSON(Success(id))
}

// LoginRequest payload
type LoginRequest struct {
	Account  string `json:"user_account" form:"user_account"`
	Password string `json:"user_password" form:"user_password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Account, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (a *UserController) LoginPost(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(Failure(ErrMissingInput))
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Failure(ErrMissingInput))
	}

	session := a.ensureSession(c)

	user, err := a.Service.Login(c.UserContext(), payload.Account, payload.Password, session)
	if err != nil {
		return a.renderError(c, err)
	}

	return c.JSON(Success(user))
}

func (a *UserController) LogoutPost(c *fiber.Ctx) error {
	removed := a.Service.Logout(a.optionalSession(c))
	return c.JSON(Success(removed))
}

func (a *UserController) CurrentGet(c *fiber.Ctx) error {
	// never start a session just to check login state
	session, ok := a.sessionFromRequest(c)
	if !ok {
		return a.renderError(c, ErrNotLoggedIn)
	}

	user, err := a.Service.CurrentUser(c.UserContext(), session)
	if err != nil {
		return a.renderError(c, err)
	}

	if a.Debug {
		a.Logger.Debug("current user", "payload", print.MaybePrettyJSON(user))
	}

	return c.JSON(Success(user))
}

func (a *UserController) SearchGet(c *fiber.Ctx) error {
	results, err := a.Service.SearchUsers(c.UserContext(), c.Query("username"), a.optionalSession(c))
	if err != nil {
		return a.renderError(c, err)
	}

	if a.Debug {
		a.Logger.Debug("search results", "payload", print.MaybePrettyJSON(results))
	}

	return c.JSON(Success(results))
}

// DeleteRequest payload
type DeleteRequest struct {
	ID int64 `json:"id" form:"id"`
}

func (a *UserController) DeletePost(c *fiber.Ctx) error {
	payload := new(DeleteRequest)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("delete parse payload", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(Failure(ErrInvalidUserID))
	}

	removed, err := a.Service.DeleteUser(c.UserContext(), payload.ID, a.optionalSession(c))
	if err != nil {
		return a.renderError(c, err)
	}

	return c.JSON(Success(removed))
}

func (a *UserController) cookieName() string {
	if a.Config == nil {
		return DefaultSessionCookieName
	}
	return a.Config.GetSessionCookieName()
}

func (a *UserController) sessionFromRequest(c *fiber.Ctx) (*SessionObject, bool) {
	return a.Sessions.Lookup(c.Cookies(a.cookieName()))
}

// optionalSession returns the request's session as a Session interface,
// or a true nil when there is none. Handing the concrete pointer to an
// interface parameter would wrap a nil *SessionObject in a non-nil
// interface and defeat the nil guards downstream.
func (a *UserController) optionalSession(c *fiber.Ctx) Session {
	if session, ok := a.sessionFromRequest(c); ok {
		return session
	}
	return nil
}

func (a *UserController) ensureSession(c *fiber.Ctx) *SessionObject {
	if session, ok := a.sessionFromRequest(c); ok {
		return session
	}

	session := a.Sessions.Start()
	c.Cookie(&fiber.Cookie{
		Name:     a.cookieName(),
		Value:    session.ID(),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return session
}

func (a *UserController) renderError(c *fiber.Ctx, err error) error {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		richErr = goerrors.Wrap(err, goerrors.CategoryInternal, "An unexpected server error occurred").
			WithCode(goerrors.CodeInternal)
	}

	a.Logger.Error("user controller error",
		"error", richErr.Message,
		"text_code", richErr.TextCode,
		"path", c.OriginalURL(),
	)

	status := richErr.Code
	if status == 0 {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(Failure(richErr))
}
