package usercenter

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// UserService orchestrates registration, login, session state, and the
// admin-gated operations. It is stateless between calls; the only
// shared mutable resources are the store and the caller's session.
type UserService struct {
	store  Users
	logger Logger
}

// NewUserService will create a new UserService
func NewUserService(store Users) *UserService {
	return &UserService{
		store:  store,
		logger: defLogger{},
	}
}

func (s *UserService) WithLogger(l Logger) *UserService {
	s.logger = l
	return s
}

// Register validates the raw input, checks uniqueness, hashes the
// password, and persists a new ordinary user. Returns the new id.
func (s *UserService) Register(ctx context.Context, account, password, confirm, planetCode string) (int64, error) {
	payload := RegisterPayload{
		Account:         account,
		Password:        password,
		ConfirmPassword: confirm,
		PlanetCode:      planetCode,
	}

	if err := payload.Validate(); err != nil {
		return 0, err
	}

	if n, err := s.store.CountByAccount(ctx, account); err != nil {
		return 0, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check account uniqueness")
	} else if n > 0 {
		return 0, ErrAccountTaken
	}

	if n, err := s.store.CountByPlanetCode(ctx, planetCode); err != nil {
		return 0, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check planet code uniqueness")
	} else if n > 0 {
		return 0, ErrPlanetCodeTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &User{
		Account:      account,
		PasswordHash: hash,
		PlanetCode:   planetCode,
		Role:         RoleOrdinary,
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		// the store categorizes uniqueness races as conflicts
		return 0, err
	}

	s.logger.Info("user registered", "id", created.ID)
	return created.ID, nil
}

// Login verifies the credential, binds the identity into the session,
// and returns the sanitized user. Unknown account and wrong password
// report the same failure.
func (s *UserService) Login(ctx context.Context, account, password string, session Session) (*SafeUser, error) {
	if isAnyBlank(account, password) {
		return nil, ErrMissingInput
	}

	if session == nil {
		return nil, ErrSessionRequired
	}

	user, err := s.store.GetByAccount(ctx, account)
	if err != nil {
		if goerrors.IsNotFound(err) {
			s.logger.Debug("login rejected, unknown account", "user_account", account)
			return nil, ErrInvalidCredentials
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user during login")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		s.logger.Debug("login rejected, digest mismatch", "user_account", account)
		return nil, ErrInvalidCredentials
	}

	BindIdentity(session, user)
	return user.Sanitize(), nil
}

// Logout clears the bound identity and returns the number of entries
// removed. Idempotent; a second call reports 0.
func (s *UserService) Logout(session Session) int {
	return ClearIdentity(session)
}

// CurrentUser re-reads the bound identity from the store so the
// projection reflects profile changes made since login.
func (s *UserService) CurrentUser(ctx context.Context, session Session) (*SafeUser, error) {
	current, ok := CurrentIdentity(session)
	if !ok {
		return nil, ErrNotLoggedIn
	}

	user, err := s.store.GetByID(ctx, current.ID)
	if err != nil {
		return nil, err
	}

	return user.Sanitize(), nil
}

// IsAdmin reports whether the session's bound identity holds the admin
// role. Always a plain boolean: no session, no binding, and non-admin
// roles are all false.
func (s *UserService) IsAdmin(session Session) bool {
	current, ok := CurrentIdentity(session)
	return ok && current.Role.IsAdmin()
}

// SearchUsers lists users whose display name contains namePattern.
// A blank pattern matches all. Admin only.
func (s *UserService) SearchUsers(ctx context.Context, namePattern string, session Session) ([]*SafeUser, error) {
	if !s.IsAdmin(session) {
		return nil, ErrNoPermission
	}

	records, err := s.store.ListByUsernameLike(ctx, namePattern)
	if err != nil {
		return nil, err
	}

	results := make([]*SafeUser, 0, len(records))
	for _, record := range records {
		results = append(results, record.Sanitize())
	}
	return results, nil
}

// DeleteUser removes the user with the given id and reports whether a
// record was actually removed. Admin only.
func (s *UserService) DeleteUser(ctx context.Context, id int64, session Session) (bool, error) {
	if !s.IsAdmin(session) {
		return false, ErrNoPermission
	}

	if id <= 0 {
		return false, ErrInvalidUserID
	}

	removed, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}

	if removed {
		s.logger.Info("user deleted", "id", id)
	}
	return removed, nil
}
