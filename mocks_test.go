package usercenter_test

import (
	"context"
	"strings"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	usercenter "github.com/goliatone/go-usercenter"
)

// memoryStore is an in-memory Users implementation for tests. It
// mirrors the store contract: case-sensitive lookups, NotFound rich
// errors, uniqueness enforced on insert.
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*usercenter.User
}

var _ usercenter.Users = (*memoryStore)(nil)

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: map[int64]*usercenter.User{},
	}
}

func (m *memoryStore) GetByID(ctx context.Context, id int64) (*usercenter.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user, ok := m.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, notFoundErr()
}

func (m *memoryStore) GetByAccount(ctx context.Context, account string) (*usercenter.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Account == account {
			clone := *user
			return &clone, nil
		}
	}
	return nil, notFoundErr()
}

func (m *memoryStore) GetByPlanetCode(ctx context.Context, code string) (*usercenter.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.PlanetCode == code {
			clone := *user
			return &clone, nil
		}
	}
	return nil, notFoundErr()
}

func (m *memoryStore) Create(ctx context.Context, record *usercenter.User) (*usercenter.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Account == record.Account || user.PlanetCode == record.PlanetCode {
			return nil, goerrors.New("account or planet code already registered", goerrors.CategoryConflict).
				WithTextCode(usercenter.TextCodeAccountTaken).
				WithCode(goerrors.CodeConflict)
		}
	}

	if record.Role == "" {
		record.Role = usercenter.RoleOrdinary
	}

	m.nextID++
	record.ID = m.nextID

	clone := *record
	m.users[record.ID] = &clone
	return record, nil
}

func (m *memoryStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func (m *memoryStore) ListByUsernameLike(ctx context.Context, pattern string) ([]*usercenter.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	trimmed := strings.TrimSpace(pattern)

	var out []*usercenter.User
	for id := int64(1); id <= m.nextID; id++ {
		user, ok := m.users[id]
		if !ok {
			continue
		}
		if trimmed == "" || strings.Contains(user.Username, trimmed) {
			clone := *user
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *memoryStore) CountByAccount(ctx context.Context, account string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, user := range m.users {
		if user.Account == account {
			n++
		}
	}
	return n, nil
}

func (m *memoryStore) CountByPlanetCode(ctx context.Context, code string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, user := range m.users {
		if user.PlanetCode == code {
			n++
		}
	}
	return n, nil
}

func notFoundErr() error {
	return goerrors.New("user not found", goerrors.CategoryNotFound).
		WithTextCode(usercenter.TextCodeNotFound).
		WithCode(goerrors.CodeNotFound)
}
