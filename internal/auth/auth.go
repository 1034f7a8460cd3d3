// Package auth is the in-process stand-in for the remote auth service:
// password sign-in, sign-up and token lookup.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront/internal/storeerrors"
	"storefront/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

const (
	DefaultTokenTTL   = 24 * time.Hour
	MinPasswordLength = 6
	issuer            = "storefront"
)

// User is the auth service's view of an account
type User struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Service is the remote auth contract consumed by the session manager
type Service interface {
	SignIn(ctx context.Context, email, password string) (User, string, error)
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (User, error)
	GetUser(ctx context.Context, token string) (User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// Claims are the access token claims
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type account struct {
	user User
	hash string
}

// MemoryService keeps accounts in memory, hashes passwords with bcrypt and
// issues HS256 access tokens
type MemoryService struct {
	mu      sync.RWMutex
	byEmail map[string]*account
	byID    map[string]*account
	secret  []byte
	ttl     time.Duration
	cost    int
	now     func() time.Time
}

// NewMemoryService creates a MemoryService. A cost outside bcrypt's range
// uses bcrypt.DefaultCost and a non-positive ttl uses DefaultTokenTTL.
func NewMemoryService(secret string, ttl time.Duration, cost int) *MemoryService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &MemoryService{
		byEmail: make(map[string]*account),
		byID:    make(map[string]*account),
		secret:  []byte(secret),
		ttl:     ttl,
		cost:    cost,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock. It is meant for tests.
func (s *MemoryService) WithClock(now func() time.Time) *MemoryService {
	s.now = now
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func unavailable(op string, err error) error {
	return fmt.Errorf("auth: %s: %w: %w", op, storeerrors.ErrAuthUnavailable, err)
}

// SignUp creates an account and returns it
func (s *MemoryService) SignUp(ctx context.Context, email, password string, metadata map[string]string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, unavailable("sign up", err)
	}
	email = normalizeEmail(email)
	if len(password) < MinPasswordLength {
		return User{}, fmt.Errorf("auth: sign up: %w",
			storeerrors.NewValidationError("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength)))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("auth: sign up: hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return User{}, fmt.Errorf("auth: sign up %s: %w", email, storeerrors.ErrConflict)
	}

	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}
	acc := &account{
		user: User{ID: utils.GenerateID(), Email: email, Metadata: meta, CreatedAt: s.now()},
		hash: string(hash),
	}
	s.byEmail[email] = acc
	s.byID[acc.user.ID] = acc

	utils.Info("auth: user signed up", map[string]any{"user_id": acc.user.ID})
	return acc.user, nil
}

// SignIn checks the password and issues an access token
func (s *MemoryService) SignIn(ctx context.Context, email, password string) (User, string, error) {
	if err := ctx.Err(); err != nil {
		return User{}, "", unavailable("sign in", err)
	}

	s.mu.RLock()
	acc, ok := s.byEmail[normalizeEmail(email)]
	s.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword([]byte(acc.hash), []byte(password)) != nil {
		return User{}, "", fmt.Errorf("auth: sign in: %w", storeerrors.ErrInvalidCredentials)
	}

	token, err := s.issue(acc.user)
	if err != nil {
		return User{}, "", fmt.Errorf("auth: sign in: %w", err)
	}
	return acc.user, token, nil
}

func (s *MemoryService) issue(user User) (string, error) {
	now := s.now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			ID:        utils.GenerateID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// GetUser resolves an access token to its user. Invalid, expired or orphaned
// tokens report ErrNotAuthenticated.
func (s *MemoryService) GetUser(ctx context.Context, token string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, unavailable("get user", err)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		reason := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "token expired"
		}
		return User{}, fmt.Errorf("auth: get user: %s: %w", reason, storeerrors.ErrNotAuthenticated)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[claims.Subject]
	if !ok {
		return User{}, fmt.Errorf("auth: get user: unknown subject: %w", storeerrors.ErrNotAuthenticated)
	}
	return acc.user, nil
}

// DeleteUser removes an account. Deleting an unknown user reports ErrNotFound.
func (s *MemoryService) DeleteUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return unavailable("delete user", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return fmt.Errorf("auth: delete user %s: %w", userID, storeerrors.ErrNotFound)
	}
	delete(s.byID, userID)
	delete(s.byEmail, acc.user.Email)
	return nil
}
