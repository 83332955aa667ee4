package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"linguatrack/internal/domain"
	"linguatrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL is how long a login session stays valid.
const sessionTTL = 30 * 24 * time.Hour

// ErrInvalidCredentials is returned on a failed login. It deliberately
// does not say whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles accounts and login sessions. The core services
// trust the user id it resolves from a session token.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", domain.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	id, err := s.userRepo.Create(user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	user.ID = id

	s.logger.Info("User registered",
		zap.Int64("user_id", id),
		zap.String("username", username),
	)

	return user, nil
}

// Login verifies the password and issues a new session.
func (s *AuthService) Login(username, password string) (*domain.Session, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(sessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logger.Info("User logged in", zap.Int64("user_id", user.ID))

	return session, nil
}

// Logout revokes a session.
func (s *AuthService) Logout(token string) error {
	if err := s.sessionRepo.Delete(token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// ResolveSession maps a session token to the owning user id. Expired
// and unknown tokens both come back as ErrNotFound.
func (s *AuthService) ResolveSession(token string) (int64, error) {
	session, err := s.sessionRepo.Get(token)
	if err != nil {
		return 0, fmt.Errorf("resolve session: %w", err)
	}
	if session.Expired(s.now()) {
		return 0, fmt.Errorf("resolve session: %w", domain.ErrNotFound)
	}
	return session.UserID, nil
}

// DeleteAccount removes the user and all dependent rows atomically.
// On failure the prior state is left intact.
func (s *AuthService) DeleteAccount(userID int64) error {
	if err := s.userRepo.DeleteCascade(userID); err != nil {
		s.logger.Error("Account deletion failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return fmt.Errorf("delete account: %w", err)
	}

	s.logger.Info("Account deleted", zap.Int64("user_id", userID))
	return nil
}

// CleanupExpiredSessions purges sessions past their expiry. Run
// periodically from main.
func (s *AuthService) CleanupExpiredSessions() error {
	if err := s.sessionRepo.DeleteExpired(s.now()); err != nil {
		s.logger.Error("Failed to cleanup expired sessions", zap.Error(err))
		return err
	}
	return nil
}
