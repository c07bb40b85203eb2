package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coffeeshop/backoffice/internal/core/domain"
	"github.com/coffeeshop/backoffice/internal/core/ports"
	"github.com/coffeeshop/backoffice/internal/metrics"
)

// AuthService implements credential verification and the session lifecycle.
type AuthService struct {
	users       ports.UserRepository
	sessions    ports.SessionStore
	sessionTTL  time.Duration
	maxSessions int64
	log         zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, sessionTTL time.Duration, maxSessions int64, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}
	if maxSessions <= 0 {
		maxSessions = 1
	}
	return &AuthService{
		users:       users,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		maxSessions: maxSessions,
		log:         log,
	}
}

// Login verifies the username/password pair against the user store and
// creates a session on success. A missing user and a wrong password are
// indistinguishable to the caller (ErrInvalidCredentials for both).
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Enabled {
		metrics.LoginsTotal.WithLabelValues("disabled").Inc()
		return nil, domain.ErrAccountDisabled
	}

	// A role outside the known set would bypass every policy rule written
	// for ADMIN/STAFF; refuse to mint a session for it.
	if !user.Role.Valid() {
		s.log.Error().Str("username", username).Str("role", string(user.Role)).Msg("account has unknown role")
		return nil, fmt.Errorf("login: account %q has unknown role %q", username, user.Role)
	}

	// Advisory cap: the login is allowed and no session is evicted, the
	// overflow is only observed.
	if n, err := s.sessions.CountByUser(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("session count failed, skipping cap check")
	} else if n >= s.maxSessions {
		metrics.SessionCapHitsTotal.Inc()
		s.log.Warn().
			Str("username", username).
			Int64("active_sessions", n).
			Msg("concurrent session cap exceeded")
	}

	now := time.Now().UTC()
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsActive.Inc()
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login successful")

	return session, nil
}

// Logout deletes the session for the given token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	metrics.SessionsActive.Dec()
	return nil
}

// CurrentUser resolves the session behind a token. The user store is not
// consulted again: session attributes are a snapshot taken at login.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now().UTC()) {
		_ = s.sessions.Delete(ctx, token)
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}
