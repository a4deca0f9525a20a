package service

import (
	"crypto/subtle"
	"time"

	"fechas/internal/repository"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	authCacheSize = 1024
	authCacheTTL  = 10 * time.Minute
)

// AuthService handles password gating of the bot
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword string

	// Only positive answers are cached; access is never revoked at runtime
	authorized *expirable.LRU[int64, bool]
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, botPassword string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: botPassword,
		authorized:  expirable.NewLRU[int64, bool](authCacheSize, nil, authCacheTTL),
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.botPassword)) == 1
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	if _, ok := s.authorized.Get(userID); ok {
		return true, nil
	}

	authorized, err := s.userRepo.IsAuthorized(userID)
	if err != nil {
		return false, err
	}
	if authorized {
		s.authorized.Add(userID, true)
	}
	return authorized, nil
}

// Authorize grants access when password is correct.
// It returns false without touching storage on a wrong password.
func (s *AuthService) Authorize(userID int64, password string) (bool, error) {
	if !s.CheckPassword(password) {
		return false, nil
	}
	if err := s.userRepo.AuthorizeUser(userID); err != nil {
		return false, err
	}
	s.authorized.Add(userID, true)
	return true, nil
}

// EnsureUserExists creates user record if doesn't exist
func (s *AuthService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}
