package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()

	created, err := CreateSession(rec, "parent@example.com", testSecret, false)
	require.NoError(t, err)
	assert.Equal(t, "parent@example.com", created.Email)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest("GET", "/api/auth/session", nil)
	req.AddCookie(cookies[0])

	user, err := GetSession(req, testSecret)
	require.NoError(t, err)
	assert.Equal(t, created.Email, user.Email)
}

func TestGetSessionRejectsWrongSecret(t *testing.T) {
	rec := httptest.NewRecorder()
	_, err := CreateSession(rec, "parent@example.com", testSecret, false)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])

	_, err = GetSession(req, "different-secret")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestGetSessionWithoutCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetSession(req, testSecret)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClearSessionExpiresCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSession(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestMiddleware(t *testing.T) {
	protected := Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// 세션 없으면 401
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/api/debug/config", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// 유효한 세션이면 통과
	loginRec := httptest.NewRecorder()
	_, err := CreateSession(loginRec, "parent@example.com", testSecret, false)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/debug/config", nil)
	req.AddCookie(loginRec.Result().Cookies()[0])
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
