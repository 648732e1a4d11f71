package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protected() (http.Handler, *bool) {
	called := false
	mw := BasicAuth("admin", "secret")
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	return h, &called
}

func TestBasicAuth_NoHeader(t *testing.T) {
	h, called := protected()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic")
	assert.False(t, *called)
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	h, called := protected()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators", nil)
	req.SetBasicAuth("admin", "wrong")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, *called)
}

func TestBasicAuth_WrongUser(t *testing.T) {
	h, called := protected()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators", nil)
	req.SetBasicAuth("root", "secret")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, *called)
}

func TestBasicAuth_MalformedHeader(t *testing.T) {
	h, called := protected()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators", nil)
	req.Header.Set("Authorization", "Basic not-base64!!")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, *called)
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	h, called := protected()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators", nil)
	req.SetBasicAuth("admin", "secret")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, *called)
}
