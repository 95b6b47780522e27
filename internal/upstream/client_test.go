package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zap.NewNop())
}

func TestDoUsesServerErrorField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/api/projects", nil, "")
	require.Error(t, err)
	assert.Equal(t, "not found", err.Error())

	ue, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ue.Status)
}

func TestDoFallsBackToMessageField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"datos inválidos"}`))
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil, "")
	require.Error(t, err)
	assert.Equal(t, "datos inválidos", err.Error())
}

func TestDoSynthesizesMessageForUnparseableBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil, "")
	require.Error(t, err)
	assert.Equal(t, "HTTP 500", err.Error())
}

func TestDoMalformedSuccessBodyIsEmptyObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	raw, err := c.Do(context.Background(), http.MethodGet, "/x", nil, "")
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(raw))
}

func TestDoAttachesBearerAndContentType(t *testing.T) {
	var gotAuth, gotType string
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	})

	_, err := c.Do(context.Background(), http.MethodPost, "/x", map[string]string{"name": "ACME"}, "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "ACME", gotBody["name"])
}

func TestDoOmitsBodyAndBearerWhenAbsent(t *testing.T) {
	var hadAuth bool
	var bodyLen int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hadAuth = r.Header.Get("Authorization") != ""
		bodyLen = r.ContentLength
		w.Write([]byte(`[]`))
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil, "")
	require.NoError(t, err)
	assert.False(t, hadAuth)
	assert.Zero(t, bodyLen)
}

func TestTypedHelperDecodesCollections(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		w.Write([]byte(`[{"id":1,"code":"PRJ-1","name":"Migración ERP","status":"En Curso","progress":60}]`))
	})

	projects, err := c.Projects(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "PRJ-1", projects[0].Code)
	assert.Equal(t, 60, projects[0].Progress)
}

func TestLoginDecodesTokenAndUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"access_token":"abc","user":{"id":7,"full_name":"Ana Díaz"}}`))
	})

	resp, err := c.Login(context.Background(), "ana@acme.cl", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.AccessToken)
	assert.Equal(t, "Ana Díaz", resp.User.FullName)
}
