package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/service"
)

func staffFixture(t *testing.T) (*AuthMiddleware, string) {
	t.Helper()
	t.Setenv("STAFF_USERNAME", "counselor")
	t.Setenv("STAFF_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")

	authSvc := service.NewAuthService()
	resp, err := authSvc.Login("counselor", "s3cret")
	require.NoError(t, err)
	return NewAuthMiddleware(authSvc), resp.Token
}

func TestRequireStaffPassesValidToken(t *testing.T) {
	mw, token := staffFixture(t)

	var gotStaffID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStaffID = GetStaffID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.RequireStaff(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, gotStaffID)
}

func TestRequireStaffRejectsMissingHeader(t *testing.T) {
	mw, _ := staffFixture(t)

	req := httptest.NewRequest("GET", "/v1/admin/stats", nil)
	rec := httptest.NewRecorder()
	mw.RequireStaff(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireStaffRejectsBadToken(t *testing.T) {
	mw, _ := staffFixture(t)

	req := httptest.NewRequest("GET", "/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	mw.RequireStaff(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireStaffRejectsNonBearerScheme(t *testing.T) {
	mw, token := staffFixture(t)

	req := httptest.NewRequest("GET", "/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Basic "+token)
	rec := httptest.NewRecorder()
	mw.RequireStaff(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
