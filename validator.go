package usercenter

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
)

// accountPattern is the allowed character set for account names.
// Anything outside it is treated the same as the reserved/special
// sequences the rules disallow.
var accountPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// RegisterPayload is the raw registration input.
type RegisterPayload struct {
	Account         string `json:"user_account" form:"user_account"`
	Password        string `json:"user_password" form:"user_password"`
	ConfirmPassword string `json:"check_password" form:"check_password"`
	PlanetCode      string `json:"planet_code" form:"planet_code"`
}

// Validate applies the registration rules in order, stopping at the
// first failure. Uniqueness checks live in the service since they need
// the store.
func (r RegisterPayload) Validate() error {
	if isAnyBlank(r.Account, r.Password, r.ConfirmPassword, r.PlanetCode) {
		return ErrMissingInput
	}

	// limits are in characters, so multibyte input counts by rune
	if err := validation.Validate(r.Account, validation.RuneLength(4, 0)); err != nil {
		return ErrAccountTooShort
	}

	if err := validation.Validate(r.Password, validation.RuneLength(8, 0)); err != nil {
		return ErrPasswordTooShort
	}

	if err := validation.Validate(r.ConfirmPassword, validation.RuneLength(8, 0)); err != nil {
		return ErrPasswordTooShort
	}

	if err := validation.Validate(r.PlanetCode, validation.RuneLength(1, 5)); err != nil {
		return ErrPlanetCodeTooLong
	}

	if strings.ContainsFunc(r.Account, unicode.IsSpace) {
		return ErrInvalidCharacters
	}

	if err := validation.Validate(r.Account, validation.Match(accountPattern)); err != nil {
		return ErrInvalidCharacters
	}

	if err := validation.Validate(r.ConfirmPassword, validation.By(ValidateStringEquals(r.Password))); err != nil {
		return ErrPasswordMismatch
	}

	return nil
}

// ValidateStringEquals will check that both values match
func ValidateStringEquals(str string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s != str {
			return errors.New("values must match")
		}
		return nil
	}
}

func isAnyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
