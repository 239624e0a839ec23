package usercenter

import (
	"sync"

	"github.com/google/uuid"
)

// UserLoginStateKey is the single well-known session slot holding the
// authenticated identity.
const UserLoginStateKey = "userLoginState"

// Session holds per-client state for the lifetime of an interaction.
// A session may exist with no bound identity; both that and a missing
// session mean "not authenticated".
type Session interface {
	ID() string
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string) bool
}

var _ Session = (*SessionObject)(nil)

// SessionObject is a map-backed Session. Slot access is serialized so
// racing requests on the same session never corrupt it; ordering
// between them is last write wins.
type SessionObject struct {
	id   string
	mu   sync.RWMutex
	data map[string]any
}

// NewSessionObject creates an empty session with the given id.
func NewSessionObject(id string) *SessionObject {
	return &SessionObject{
		id:   id,
		data: map[string]any{},
	}
}

func (s *SessionObject) ID() string {
	return s.id
}

func (s *SessionObject) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *SessionObject) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Delete removes the slot and reports whether it was set.
func (s *SessionObject) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	delete(s.data, key)
	return ok
}

// SessionStore keeps live sessions keyed by id. Lookup never creates a
// session as a side effect; only Start does.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*SessionObject
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[string]*SessionObject{},
	}
}

// Start creates and registers a new session.
func (s *SessionStore) Start() *SessionObject {
	sess := NewSessionObject(uuid.NewString())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID()] = sess
	return sess
}

// Lookup returns the session for id if it exists.
func (s *SessionStore) Lookup(id string) (*SessionObject, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Destroy drops the session and reports whether it existed.
func (s *SessionStore) Destroy(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// BindIdentity attaches the user to the session's login slot,
// overwriting any prior binding. No multi-login stacking.
func BindIdentity(s Session, user *User) {
	if s == nil || user == nil {
		return
	}
	s.Set(UserLoginStateKey, user)
}

// CurrentIdentity returns the user bound to the session, if any.
func CurrentIdentity(s Session) (*User, bool) {
	if s == nil {
		return nil, false
	}

	v, ok := s.Get(UserLoginStateKey)
	if !ok {
		return nil, false
	}

	user, ok := v.(*User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// ClearIdentity removes the bound identity and returns the number of
// entries removed, 0 or 1. Safe to call on an already-cleared or nil
// session.
func ClearIdentity(s Session) int {
	if s == nil {
		return 0
	}

	if s.Delete(UserLoginStateKey) {
		return 1
	}
	return 0
}
