// Package auth implements the portal's authentication stub and role
// dispatch. Login is deterministic against the seeded account table and
// keeps the legacy fixed-delay contract, but credentials are compared as
// bcrypt hashes; plaintext passwords are never stored.
package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clubportal/backend/internal/models"
	"clubportal/backend/internal/store"
)

// ErrInvalidCredentials covers both an unknown member id and a wrong
// password, so callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid member id or password")

// Service performs logins and issues tokens.
type Service struct {
	Store   store.Store
	Tokens  *TokenManager
	latency time.Duration
}

// NewService creates an auth service. latency simulates the network round
// trip of the legacy stub; pass 0 in tests.
func NewService(s store.Store, tokens *TokenManager, latency time.Duration) *Service {
	return &Service{Store: s, Tokens: tokens, latency: latency}
}

// Login resolves the member id against the account table and compares the
// bcrypt hash. It always takes at least the configured latency.
func (s *Service) Login(memberID, password string) (models.User, string, error) {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	user, err := s.Store.FindUserByMemberID(memberID)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
