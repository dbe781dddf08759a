package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps user accounts for the lifetime of the process.
type Store struct {
	mu    sync.RWMutex
	users []User
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Create(user User) (User, error) {
	if !ValidRole(user.Role) {
		return User{}, ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, email) {
			return User{}, ErrEmailTaken
		}
	}

	user.ID = uuid.NewString()
	user.Email = email
	user.CreatedAt = time.Now().UTC()
	s.users = append(s.users, user)
	return user, nil
}

func (s *Store) FindByEmail(email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, strings.TrimSpace(email)) {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *Store) FindByID(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}
