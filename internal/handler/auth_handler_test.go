package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"innovati-portal/internal/session"
	"innovati-portal/internal/upstream"
)

// fakeAuthUpstream answers the two login endpoints the way the real API
// does, counting how many requests actually arrived.
func fakeAuthUpstream(t *testing.T, hits *int) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		switch r.URL.Path {
		case "/api/auth/login", "/api/admin/auth/login":
			var body struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			require.NoError(t, decodeJSON(r, &body))
			if body.Password != "secreto" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"credenciales inválidas"}`))
				return
			}
			w.Write([]byte(`{"access_token":"tok-1","user":{"id":7,"full_name":"Ana Díaz","role":"admin"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return upstream.NewClient(srv.URL, zap.NewNop())
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func newAuthRouter(t *testing.T, api *upstream.Client) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessions := session.NewManager(session.NewMemoryStore(), "test-secret", time.Hour)
	auth := NewAuthHandler(api, sessions, zap.NewNop())

	r := gin.New()
	r.POST("/portal/api/login", auth.ClientLogin)
	r.POST("/portal/api/logout", auth.ClientLogout)
	return r, sessions
}

func postJSON(r *gin.Engine, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesSessionCookie(t *testing.T) {
	var hits int
	r, sessions := newAuthRouter(t, fakeAuthUpstream(t, &hits))

	w := postJSON(r, "/portal/api/login", `{"email":"ana@acme.cl","password":"secreto"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana Díaz")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, session.DomainClient.CookieName(), cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)

	sess, ok := sessions.Resolve(context.Background(), session.DomainClient, cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, "Ana Díaz", sess.User.FullName)
}

func TestLoginPassesThroughUpstreamRejection(t *testing.T) {
	var hits int
	r, _ := newAuthRouter(t, fakeAuthUpstream(t, &hits))

	w := postJSON(r, "/portal/api/login", `{"email":"ana@acme.cl","password":"mala"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "credenciales inválidas")
	assert.Equal(t, 1, hits)
}

func TestLoginRejectsEmptyCredentialsLocally(t *testing.T) {
	var hits int
	r, _ := newAuthRouter(t, fakeAuthUpstream(t, &hits))

	for _, body := range []string{
		`{"email":"","password":"x"}`,
		`{"email":"   ","password":"x"}`,
		`{"email":"ana@acme.cl","password":""}`,
		`not json`,
	} {
		w := postJSON(r, "/portal/api/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Zero(t, hits)
}

func TestLogoutClearsSessionAndCookie(t *testing.T) {
	var hits int
	r, sessions := newAuthRouter(t, fakeAuthUpstream(t, &hits))

	login := postJSON(r, "/portal/api/login", `{"email":"ana@acme.cl","password":"secreto"}`)
	require.Equal(t, http.StatusOK, login.Code)
	issued := login.Result().Cookies()[0]

	out := postJSON(r, "/portal/api/logout", "", issued)
	assert.Equal(t, http.StatusOK, out.Code)

	expired := out.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Negative(t, expired[0].MaxAge)

	_, ok := sessions.Resolve(context.Background(), session.DomainClient, issued.Value)
	assert.False(t, ok)
}

func TestLogoutWithoutSessionIsANoOp(t *testing.T) {
	var hits int
	r, _ := newAuthRouter(t, fakeAuthUpstream(t, &hits))

	w := postJSON(r, "/portal/api/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
