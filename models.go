package usercenter

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the account entity persisted by the user record store.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Username     string     `bun:"username" json:"username,omitempty"`
	Account      string     `bun:"user_account,notnull,unique" json:"user_account,omitempty"`
	AvatarURL    string     `bun:"avatar_url" json:"avatar_url,omitempty"`
	Gender       int        `bun:"gender" json:"gender,omitempty"`
	Phone        string     `bun:"phone" json:"phone,omitempty"`
	Email        string     `bun:"email" json:"email,omitempty"`
	PasswordHash string     `bun:"user_password,notnull" json:"-"`
	Role         UserRole   `bun:"user_role,notnull" json:"user_role,omitempty"`
	PlanetCode   string     `bun:"planet_code,notnull,unique" json:"planet_code,omitempty"`
	CreatedAt    *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt    *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt    *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// SafeUser is the outward projection of a User. It carries no password
// digest field at all, so the type itself cannot leak credentials.
type SafeUser struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username,omitempty"`
	Account    string     `json:"user_account"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
	Gender     int        `json:"gender"`
	Phone      string     `json:"phone,omitempty"`
	Email      string     `json:"email,omitempty"`
	Role       UserRole   `json:"user_role"`
	PlanetCode string     `json:"planet_code,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Sanitize strips internal-only fields from the record. Every user that
// leaves the core goes through this projection.
func (u *User) Sanitize() *SafeUser {
	if u == nil {
		return nil
	}

	return &SafeUser{
		ID:         u.ID,
		Username:   u.Username,
		Account:    u.Account,
		AvatarURL:  u.AvatarURL,
		Gender:     u.Gender,
		Phone:      u.Phone,
		Email:      u.Email,
		Role:       u.Role,
		PlanetCode: u.PlanetCode,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
