package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innovati-portal/internal/model"
)

const testSecret = "test-secret"

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(), testSecret, time.Hour)
}

func TestIssueAndResolveRoundTrip(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	user := model.User{ID: 7, FullName: "Ana Díaz", ClientName: "ACME"}
	cookie, err := m.Issue(ctx, DomainClient, "abc", user)
	require.NoError(t, err)
	require.NotEmpty(t, cookie)

	sess, ok := m.Resolve(ctx, DomainClient, cookie)
	require.True(t, ok)
	assert.Equal(t, "abc", sess.Token)
	assert.Equal(t, user, sess.User)
}

func TestResolveNeverErrsOnGarbage(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	for _, cookie := range []string{"", "garbage", "a.b.c", "ey.ey.ey"} {
		sess, ok := m.Resolve(ctx, DomainClient, cookie)
		assert.False(t, ok)
		assert.Empty(t, sess.Token)
		assert.Equal(t, model.User{}, sess.User)
	}
}

func TestDomainsAreIsolated(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	cookie, err := m.Issue(ctx, DomainClient, "client-token", model.User{ID: 1})
	require.NoError(t, err)

	// An admin guard can never read a client session.
	_, ok := m.Resolve(ctx, DomainAdmin, cookie)
	assert.False(t, ok)

	_, ok = m.Resolve(ctx, DomainClient, cookie)
	assert.True(t, ok)
}

func TestClearThenResolve(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	cookie, err := m.Issue(ctx, DomainClient, "abc", model.User{ID: 1})
	require.NoError(t, err)

	require.NoError(t, m.Clear(ctx, DomainClient, cookie))
	_, ok := m.Resolve(ctx, DomainClient, cookie)
	assert.False(t, ok)

	// Clearing again, or clearing nonsense, stays a no-op.
	require.NoError(t, m.Clear(ctx, DomainClient, cookie))
	require.NoError(t, m.Clear(ctx, DomainClient, "garbage"))
}

func TestTamperedCookieIsRejected(t *testing.T) {
	m := newTestManager()
	other := NewManager(NewMemoryStore(), "another-secret", time.Hour)
	ctx := context.Background()

	cookie, err := other.Issue(ctx, DomainClient, "abc", model.User{ID: 1})
	require.NoError(t, err)

	_, ok := m.Resolve(ctx, DomainClient, cookie)
	assert.False(t, ok)
}

func TestEmptyTokenIsNotAuthed(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	cookie, err := m.Issue(ctx, DomainClient, "", model.User{ID: 1})
	require.NoError(t, err)

	// A session without a token is as good as no session.
	_, ok := m.Resolve(ctx, DomainClient, cookie)
	assert.False(t, ok)
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, DomainClient, "id", Session{Token: "abc"}, -time.Second))
	_, err := store.Get(ctx, DomainClient, "id")
	assert.ErrorIs(t, err, ErrNotFound)
}
