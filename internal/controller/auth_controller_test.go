package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"printing-support-be/internal/dto"
	"printing-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	res     *dto.LoginResponse
	err     error
	lastReq *dto.LoginRequest
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	s.lastReq = req
	return s.res, s.err
}

func newAuthApp(svc service.IAuthService) *fiber.App {
	app := fiber.New()
	NewAuthController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestLoginSuccess(t *testing.T) {
	userId := uuid.New()
	svc := &stubAuthService{res: &dto.LoginResponse{
		User: dto.LoginUser{Id: userId, DisplayName: "Maria Santos"},
	}}
	app := newAuthApp(svc)

	status, body := doJSON(t, app, "POST", "/api/auth/login", "",
		map[string]string{"identifier": "maria.santos@example.com", "password": "pw"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, userId.String(), user["id"])
	assert.Equal(t, "Maria Santos", user["displayName"])
}

func TestLoginBadShape(t *testing.T) {
	app := newAuthApp(&stubAuthService{err: service.ErrInvalidLoginInput})

	status, body := doJSON(t, app, "POST", "/api/auth/login", "",
		map[string]string{"identifier": "maria", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please enter a valid email/phone and password.", body["error"])
}

func TestLoginBadCredentials(t *testing.T) {
	app := newAuthApp(&stubAuthService{err: service.ErrInvalidCredentials})

	status, body := doJSON(t, app, "POST", "/api/auth/login", "",
		map[string]string{"identifier": "maria.santos@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "The email/phone or password you entered is incorrect. Please try again.", body["error"])
}

func TestLoginStoreFailureStaysGeneric(t *testing.T) {
	app := newAuthApp(&stubAuthService{err: errors.New("pq: connection refused")})

	status, body := doJSON(t, app, "POST", "/api/auth/login", "",
		map[string]string{"identifier": "maria.santos@example.com", "password": "pw"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "We couldn't sign you in right now. Please try again in a moment.", body["error"])
	assert.NotContains(t, body["error"], "connection refused")
}
