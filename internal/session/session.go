// Package session holds who is logged in, per portal domain. The two
// domains (client portal, admin portal) use disjoint key namespaces and
// cookie names; neither can resolve a session issued by the other.
package session

import (
	"context"
	"errors"
	"time"

	"innovati-portal/internal/model"
)

// Domain is one of the two independent identity domains.
type Domain string

const (
	DomainClient Domain = "client"
	DomainAdmin  Domain = "admin"
)

// CookieName returns the portal cookie for this domain.
func (d Domain) CookieName() string {
	if d == DomainAdmin {
		return "innovati_admin_sid"
	}
	return "innovati_sid"
}

// Session is the upstream access token plus the user profile it belongs to.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// ErrNotFound is returned by Store.Get when no session exists for the id.
var ErrNotFound = errors.New("session not found")

// Store persists sessions. Implementations must keep domains disjoint and
// make Delete a no-op when nothing is stored.
type Store interface {
	Put(ctx context.Context, domain Domain, id string, s Session, ttl time.Duration) error
	Get(ctx context.Context, domain Domain, id string) (Session, error)
	Delete(ctx context.Context, domain Domain, id string) error
}

func storageKey(domain Domain, id string) string {
	return "session:" + string(domain) + ":" + id
}
