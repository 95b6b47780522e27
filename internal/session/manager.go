package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"innovati-portal/internal/model"
)

// Manager issues and resolves portal sessions. The cookie value is the
// session id wrapped in an HS256 JWT, so a tampered cookie fails the
// signature check before any store lookup. The JWT carries no expiry
// logic of its own beyond the store TTL; token validity against the
// upstream is only discovered when an upstream call fails.
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl}
}

// Issue stores a session for the domain and returns the signed cookie value.
func (m *Manager) Issue(ctx context.Context, domain Domain, token string, user model.User) (string, error) {
	id := uuid.NewString()
	if err := m.store.Put(ctx, domain, id, Session{Token: token, User: user}, m.ttl); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": id,
		"dom": string(domain),
		"exp": time.Now().Add(m.ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secret))
}

// Resolve returns the session behind a cookie value. Malformed, forged,
// cross-domain or expired cookies all come back as (zero, false); this
// path never errors out to the caller.
func (m *Manager) Resolve(ctx context.Context, domain Domain, cookie string) (Session, bool) {
	id, ok := m.parseCookie(domain, cookie)
	if !ok {
		return Session{}, false
	}

	sess, err := m.store.Get(ctx, domain, id)
	if err != nil {
		return Session{}, false
	}
	return sess, sess.Token != ""
}

// Clear removes the session behind a cookie value. Safe to call with a
// cookie that resolves to nothing.
func (m *Manager) Clear(ctx context.Context, domain Domain, cookie string) error {
	id, ok := m.parseCookie(domain, cookie)
	if !ok {
		return nil
	}
	return m.store.Delete(ctx, domain, id)
}

// TTL is the session lifetime, also used as the cookie max-age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) parseCookie(domain Domain, cookie string) (string, bool) {
	if cookie == "" {
		return "", false
	}

	token, err := jwt.Parse(cookie, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	if dom, _ := claims["dom"].(string); dom != string(domain) {
		return "", false
	}

	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
