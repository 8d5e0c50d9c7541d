package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Parvathyammu/Payroll-Management/internal/auth"
	autherrors "github.com/Parvathyammu/Payroll-Management/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	RegisterFn func(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error)
	LoginFn    func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	RefreshFn  func(ctx context.Context, req auth.RefreshRequest) (auth.TokenPairResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	return f.RegisterFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.LoginFn(ctx, req)
}

func (f *fakeAuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenPairResponse, error) {
	return f.RefreshFn(ctx, req)
}

func setupHandler(svc auth.Service) *auth.Handler {
	return auth.NewHandler(svc, zap.NewNop())
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns user and token pair", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{
					Message:      "Login successful",
					User:         auth.UserResponse{ID: 5, Email: req.Email, Role: "admin"},
					AccessToken:  "access.jwt",
					RefreshToken: "refresh.jwt",
				}, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"ana@acme.com","password":"s3cret99"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"access.jwt"`)
		assert.Contains(t, w.Body.String(), `"refresh_token":"refresh.jwt"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("unknown email surfaces 404", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrUserNotFound
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"ghost@acme.com","password":"s3cret99"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})

	t.Run("wrong password surfaces 401", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"ana@acme.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	})

	t.Run("malformed email rejected before service", func(t *testing.T) {
		called := false
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				called = true
				return auth.LoginResponse{}, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"not-an-email","password":"s3cret99"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 201 without password fields", func(t *testing.T) {
		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
				return auth.UserResponse{ID: 1, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Role: "employee"}, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"first_name":"Ana","last_name":"Silva","email":"ana@acme.com","password":"s3cret99"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("duplicate email surfaces 409", func(t *testing.T) {
		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
				return auth.UserResponse{}, autherrors.ErrEmailAlreadyRegistered
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"first_name":"Ana","last_name":"Silva","email":"ana@acme.com","password":"s3cret99"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Register(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
