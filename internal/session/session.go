// Package session signs users in and out of a client's store
package session

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"storefront/internal/auth"
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/storeerrors"
	"storefront/utils"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=session

const (
	RoleBuyer   = "buyer"
	metadataKey = "name"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ProfileWriter persists the user_profile row created at registration
type ProfileWriter interface {
	CreateProfile(ctx context.Context, profile models.Profile) error
}

// Manager drives login, registration and logout
type Manager struct {
	auth     auth.Service
	profiles ProfileWriter
}

// NewManager creates a new Manager instance
func NewManager(authSvc auth.Service, profiles ProfileWriter) *Manager {
	return &Manager{auth: authSvc, profiles: profiles}
}

// ValidateEmail reports a ValidationError for a malformed address
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return storeerrors.NewValidationError("email", "invalid email address")
	}
	return nil
}

// classify wraps an auth service failure in ErrAuth, keeping the cause kind.
// Anything that is not a credential rejection counts as the service being unavailable.
func classify(op string, err error) error {
	if errors.Is(err, storeerrors.ErrInvalidCredentials) || errors.Is(err, storeerrors.ErrAuthUnavailable) {
		return fmt.Errorf("session: %s: %w: %w", op, storeerrors.ErrAuth, err)
	}
	if errors.Is(err, storeerrors.ErrValidation) || errors.Is(err, storeerrors.ErrConflict) {
		return fmt.Errorf("session: %s: %w", op, err)
	}
	return fmt.Errorf("session: %s: %w: %w: %v", op, storeerrors.ErrAuth, storeerrors.ErrAuthUnavailable, err)
}

// Login authenticates against the auth service and records the session in s.
// Malformed input is rejected before any remote call.
func (m *Manager) Login(ctx context.Context, s *store.Store, email, password string) (models.Session, error) {
	if err := ValidateEmail(email); err != nil {
		return models.Session{}, fmt.Errorf("session: login: %w", err)
	}
	if password == "" {
		return models.Session{}, fmt.Errorf("session: login: %w", storeerrors.NewValidationError("password", "password is required"))
	}

	user, token, err := m.auth.SignIn(ctx, email, password)
	if err != nil {
		utils.Warn("session: login failed", map[string]any{"error": err.Error()})
		return models.Session{}, classify("login", err)
	}

	sess := models.Session{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.Metadata[metadataKey],
		Token:       token,
	}
	s.SetSession(&sess)

	utils.Info("session: user logged in", map[string]any{"user_id": user.ID})
	return sess, nil
}

// Register signs up a new account and writes its buyer profile. It does not
// sign the user in. When the profile write fails the account is deleted again
// so that no auth user exists without a profile.
func (m *Manager) Register(ctx context.Context, name, email, password string) (models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Profile{}, fmt.Errorf("session: register: %w", storeerrors.NewValidationError("name", "name is required"))
	}
	if err := ValidateEmail(email); err != nil {
		return models.Profile{}, fmt.Errorf("session: register: %w", err)
	}

	user, err := m.auth.SignUp(ctx, email, password, map[string]string{metadataKey: name})
	if err != nil {
		utils.Warn("session: sign up failed", map[string]any{"error": err.Error()})
		return models.Profile{}, classify("register", err)
	}

	profile := models.Profile{
		ProfileID: utils.GenerateID(),
		UID:       user.ID,
		Email:     user.Email,
		Username:  name,
		Role:      RoleBuyer,
	}
	if err := m.profiles.CreateProfile(ctx, profile); err != nil {
		utils.Error("session: profile write failed, removing auth user", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		if delErr := m.auth.DeleteUser(context.WithoutCancel(ctx), user.ID); delErr != nil {
			utils.Error("session: compensating delete failed", map[string]any{
				"user_id": user.ID,
				"error":   delErr.Error(),
			})
		}
		return models.Profile{}, fmt.Errorf("session: register: %w: %w", storeerrors.ErrProfileWrite, err)
	}

	utils.Info("session: user registered", map[string]any{"user_id": user.ID})
	return profile, nil
}

// Verify checks the stored session's token against the auth service. A
// token the service rejects (expired, forged or belonging to a deleted
// account) ends the session and reports ErrNotAuthenticated. When the
// service cannot be reached the session is kept and ErrAuthUnavailable is
// reported.
func (m *Manager) Verify(ctx context.Context, s *store.Store) (models.Session, error) {
	sess, ok := s.Session()
	if !ok {
		return models.Session{}, fmt.Errorf("session: verify: %w", storeerrors.ErrNotAuthenticated)
	}

	user, err := m.auth.GetUser(ctx, sess.Token)
	switch {
	case err == nil && user.ID == sess.ID:
		return sess, nil
	case err == nil:
		err = fmt.Errorf("token subject %s does not match session user: %w", user.ID, storeerrors.ErrNotAuthenticated)
	case !errors.Is(err, storeerrors.ErrNotAuthenticated):
		utils.Warn("session: token check failed", map[string]any{"user_id": sess.ID, "error": err.Error()})
		return models.Session{}, classify("verify", err)
	}

	if s.EndSession(sess.Token) {
		utils.Info("session: stale session ended", map[string]any{"user_id": sess.ID, "reason": err.Error()})
	}
	return models.Session{}, fmt.Errorf("session: verify: %w", err)
}

// Logout clears the session and every other collection of s
func (m *Manager) Logout(s *store.Store) {
	var userID string
	if sess, ok := s.Session(); ok {
		userID = sess.ID
	}
	s.Reset()
	utils.Info("session: user logged out", map[string]any{"user_id": userID})
}
