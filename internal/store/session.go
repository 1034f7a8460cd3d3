package store

import (
	"storefront/internal/models"
)

// SetSession records the authenticated user. A nil session signs out
// without touching the other collections.
func (s *Store) SetSession(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session == nil {
		s.session = nil
	} else {
		cp := *session
		s.session = &cp
	}
	s.persist(KeyUser)
}

// EndSession signs out when the current session still carries token and
// reports whether it did. A session replaced by a newer login is kept. The
// other collections are untouched.
func (s *Store) EndSession(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.Token != token {
		return false
	}
	s.session = nil
	s.persist(KeyUser)
	return true
}

// Session returns a copy of the current session
func (s *Store) Session() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// IsAuthenticated is derived from the session so the two can never disagree
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

func (s *Store) sessionCopy() *models.Session {
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}
