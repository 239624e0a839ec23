package usercenter

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Users is the user record store consumed by the service. Lookups are
// case-sensitive exact matches and never see soft-deleted rows.
type Users interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByAccount(ctx context.Context, account string) (*User, error)
	GetByPlanetCode(ctx context.Context, code string) (*User, error)
	Create(ctx context.Context, record *User) (*User, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	ListByUsernameLike(ctx context.Context, pattern string) ([]*User, error)
	CountByAccount(ctx context.Context, account string) (int, error)
	CountByPlanetCode(ctx context.Context, code string) (int, error)
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository returns a bun-backed Users store.
func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

func (a *users) GetByID(ctx context.Context, id int64) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, a.wrapLookupErr(err, map[string]any{"id": id})
	}
	return record, nil
}

func (a *users) GetByAccount(ctx context.Context, account string) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().Model(record).
		Where("?TableAlias.user_account = ?", account).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, a.wrapLookupErr(err, map[string]any{"user_account": account})
	}
	return record, nil
}

func (a *users) GetByPlanetCode(ctx context.Context, code string) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().Model(record).
		Where("?TableAlias.planet_code = ?", code).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, a.wrapLookupErr(err, map[string]any{"planet_code": code})
	}
	return record, nil
}

func (a *users) Create(ctx context.Context, record *User) (*User, error) {
	if record == nil {
		return nil, goerrors.New("nil user record", goerrors.CategoryBadInput).
			WithCode(goerrors.CodeBadRequest)
	}

	prepareUserDefaults(record)

	if _, err := a.db.NewInsert().Model(record).Exec(ctx); err != nil {
		// check-then-insert races end here: the uniqueness constraint
		// is the last line of defense
		if isUniqueViolation(err) {
			return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "account or planet code already registered").
				WithTextCode(TextCodeAccountTaken).
				WithCode(goerrors.CodeConflict)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not create user")
	}

	return record, nil
}

func (a *users) DeleteByID(ctx context.Context, id int64) (bool, error) {
	// the soft_delete tag turns this into a logical delete
	res, err := a.db.NewDelete().Model((*User)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "could not delete user").
			WithMetadata(map[string]any{"id": id})
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "could not read delete result")
	}
	return n > 0, nil
}

func (a *users) ListByUsernameLike(ctx context.Context, pattern string) ([]*User, error) {
	var records []*User

	q := a.db.NewSelect().Model(&records).Order("usr.id ASC")
	if trimmed := strings.TrimSpace(pattern); trimmed != "" {
		q = q.Where("?TableAlias.username LIKE ?", "%"+trimmed+"%")
	}

	if err := q.Scan(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not list users")
	}
	return records, nil
}

func (a *users) CountByAccount(ctx context.Context, account string) (int, error) {
	n, err := a.db.NewSelect().Model((*User)(nil)).
		Where("?TableAlias.user_account = ?", account).
		Count(ctx)
	if err != nil {
		return 0, goerrors.Wrap(err, goerrors.CategoryInternal, "could not count accounts")
	}
	return n, nil
}

func (a *users) CountByPlanetCode(ctx context.Context, code string) (int, error) {
	n, err := a.db.NewSelect().Model((*User)(nil)).
		Where("?TableAlias.planet_code = ?", code).
		Count(ctx)
	if err != nil {
		return 0, goerrors.Wrap(err, goerrors.CategoryInternal, "could not count planet codes")
	}
	return n, nil
}

func (a *users) wrapLookupErr(err error, metadata map[string]any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return goerrors.New("user not found", goerrors.CategoryNotFound).
			WithTextCode(TextCodeNotFound).
			WithCode(goerrors.CodeNotFound).
			WithMetadata(metadata)
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "user lookup failed").
		WithMetadata(metadata)
}

func prepareUserDefaults(record *User) {
	if record.Role == "" {
		record.Role = RoleOrdinary
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
