package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moim/internal/domain"
	"moim/internal/handler"
	"moim/internal/service"
	"moim/mocks"
)

func postJSON(t *testing.T, w *httptest.ResponseRecorder, path string, payload interface{}) *gin.Context {
	t.Helper()
	body, _ := json.Marshal(payload)
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	tokenPair := &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	mockAuth.On("Login", mock.Anything, service.LoginInput{
		Email:    "user@test.com",
		Password: "password123",
	}).Return(tokenPair, nil)

	w := httptest.NewRecorder()
	h.Login(postJSON(t, w, "/api/v1/auth/login", map[string]string{
		"email":    "user@test.com",
		"password": "password123",
	}))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	h.Login(postJSON(t, w, "/api/v1/auth/login", map[string]string{
		"email":    "user@test.com",
		"password": "wrongpassword",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	w := httptest.NewRecorder()
	h.Login(postJSON(t, w, "/api/v1/auth/login", map[string]string{
		"email": "not-an-email",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	user := &domain.User{ID: uuid.New(), Email: "new@test.com", FullName: "New User", IsActive: true}
	mockAuth.On("Register", mock.Anything, service.RegisterInput{
		Email:    "new@test.com",
		Password: "password123",
		FullName: "New User",
	}).Return(user, nil)

	w := httptest.NewRecorder()
	h.Register(postJSON(t, w, "/api/v1/auth/register", map[string]string{
		"email":     "new@test.com",
		"password":  "password123",
		"full_name": "New User",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
		Return(nil, domain.ErrDuplicateEmail)

	w := httptest.NewRecorder()
	h.Register(postJSON(t, w, "/api/v1/auth/register", map[string]string{
		"email":     "taken@test.com",
		"password":  "password123",
		"full_name": "Someone",
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	tokenPair := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	mockAuth.On("RefreshToken", mock.Anything, "old-refresh").Return(tokenPair, nil)

	w := httptest.NewRecorder()
	h.RefreshToken(postJSON(t, w, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": "old-refresh",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuth.AssertExpectations(t)
}
