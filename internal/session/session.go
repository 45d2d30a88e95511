// Package session holds the admin's authentication state: the bearer token,
// its decoded claims, and the user returned at login.
package session

import (
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/naveenspark/folio/pkg/domain"
)

// Session is the in-memory auth state backed by a Store. It is shared by
// the UI loop, request goroutines and the token file watcher.
type Session struct {
	mu     sync.RWMutex
	store  *Store
	logger *zap.Logger

	token  string
	claims jwt.MapClaims
	user   *domain.User
}

// Open rehydrates a session from store. A token whose payload cannot be
// decoded is discarded along with the file.
func Open(store *Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{store: store, logger: logger}
	s.Reload()
	return s
}

// Reload re-reads the store. Used at startup and when the token file
// changes on disk.
func (s *Session) Reload() {
	tok, err := s.store.Load()
	if err != nil {
		s.logger.Warn("read token", zap.Error(err))
		tok = ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if tok == s.token {
		return
	}
	if tok == "" {
		s.clearLocked()
		return
	}

	claims, err := DecodeClaims(tok)
	if err != nil {
		s.logger.Warn("discarding stored token", zap.Error(err))
		s.clearLocked()
		if err := s.store.Clear(); err != nil {
			s.logger.Warn("remove token file", zap.Error(err))
		}
		return
	}
	s.token = tok
	s.claims = claims
	s.user = userFromClaims(claims)
	s.logger.Debug("session restored", zap.String("subject", subject(claims)))
}

// Login persists token and records user. No network call is made. The
// token is stored as given; claims are kept only if its payload decodes.
func (s *Session) Login(token string, user *domain.User) error {
	if err := s.store.Save(token); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.claims = nil
	if claims, err := DecodeClaims(token); err == nil {
		s.claims = claims
	}
	s.user = user
	if s.user == nil && s.claims != nil {
		s.user = userFromClaims(s.claims)
	}
	s.logger.Info("signed in")
	return nil
}

// Logout removes the stored token and clears the session.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.clearLocked()
	s.mu.Unlock()

	s.logger.Info("signed out")
	return s.store.Clear()
}

// Expire is called when the API rejects the token. It drops the token
// like Logout but leaves navigation to the caller.
func (s *Session) Expire() {
	s.mu.Lock()
	had := s.token != ""
	s.clearLocked()
	s.mu.Unlock()

	if had {
		s.logger.Warn("session expired")
	}
	if err := s.store.Clear(); err != nil {
		s.logger.Warn("remove token file", zap.Error(err))
	}
}

// Token returns the bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a token is held. It does not check the
// signature or expiry.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// Claims returns a copy of the decoded claims, or nil.
func (s *Session) Claims() jwt.MapClaims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return nil
	}
	out := make(jwt.MapClaims, len(s.claims))
	for k, v := range s.claims {
		out[k] = v
	}
	return out
}

// User returns the signed-in user, if known.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// ExpiresAt returns the advisory "exp" claim. It is never enforced.
func (s *Session) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return time.Time{}, false
	}
	exp, err := s.claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Store returns the backing store.
func (s *Session) Store() *Store { return s.store }

func (s *Session) clearLocked() {
	s.token = ""
	s.claims = nil
	s.user = nil
}

func subject(c jwt.MapClaims) string {
	sub, _ := c.GetSubject()
	return sub
}

func userFromClaims(c jwt.MapClaims) *domain.User {
	u := &domain.User{}
	if email, ok := c["email"].(string); ok {
		u.Email = email
	}
	if name, ok := c["name"].(string); ok {
		u.Name = name
	}
	if role, ok := c["role"].(string); ok {
		u.Role = role
	}
	switch id := c["id"].(type) {
	case string:
		u.ID = domain.ID(id)
	case float64:
		u.ID = domain.ID(strconv.FormatFloat(id, 'f', -1, 64))
	}
	if u.ID == "" {
		u.ID = domain.ID(subject(c))
	}
	if u.ID == "" && u.Email == "" {
		return nil
	}
	return u
}
