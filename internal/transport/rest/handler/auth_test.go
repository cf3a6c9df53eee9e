package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/service"
)

func TestLoginEndpoint(t *testing.T) {
	t.Setenv("STAFF_USERNAME", "counselor")
	t.Setenv("STAFF_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")
	h := NewAuthHandler(service.NewAuthService())

	req := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(`{"username":"counselor","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, strings.HasPrefix(resp.StaffID, "staff_"))
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	t.Setenv("STAFF_USERNAME", "counselor")
	t.Setenv("STAFF_PASSWORD", "s3cret")
	h := NewAuthHandler(service.NewAuthService())

	req := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(`{"username":"counselor","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginEndpointMalformedBody(t *testing.T) {
	h := NewAuthHandler(service.NewAuthService())

	req := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
