package handlers_test

import (
	"DarkScope/internal/config"
	"DarkScope/internal/handlers"
	"DarkScope/internal/middleware"
	"DarkScope/internal/model"
	"DarkScope/internal/repo"
	"DarkScope/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// --- Helpers ---
func newTestRouter(t *testing.T, ur repo.UserRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	h := handlers.NewHandler(userSvc, service.NewScanService(), service.NewQueryService(), logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

func hasAuthCookie(rr *httptest.ResponseRecorder) bool {
	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return true
		}
	}
	return false
}

// --- Tests ---
func TestUser_Register(t *testing.T) {
	m := new(mockUserRepo)
	router := newTestRouter(t, m)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@example.com").Return((*model.User)(nil), nil).Once()
		created := &model.User{ID: 42, Email: "john@example.com", Username: "john"}
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "john@example.com" && u.Password != ""
		})).Return(created, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/register",
			strings.NewReader(`{"email":"john@example.com","username":"john","password":"Passw0rdX"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, hasAuthCookie(rr), "Set-Cookie auth_token expected")
		m.AssertExpectations(t)
	})

	t.Run("conflict", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@example.com").Return(&model.User{ID: 1}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/register",
			strings.NewReader(`{"email":"john@example.com","username":"john","password":"Passw0rdX"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		m.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		m.ExpectedCalls = nil
		req := httptest.NewRequest(http.MethodPost, "/api/user/register",
			strings.NewReader(`{"email":"not-an-email","username":"john","password":"Passw0rdX"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUser_Login(t *testing.T) {
	m := new(mockUserRepo)
	router := newTestRouter(t, m)

	hash, _ := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.DefaultCost)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@example.com").
			Return(&model.User{ID: 2, Email: "alice@example.com", Username: "alice", Password: string(hash)}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/login",
			strings.NewReader(`{"email":"alice@example.com","password":"Secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, hasAuthCookie(rr))
		m.AssertExpectations(t)
	})

	t.Run("unauthorized", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@example.com").
			Return(&model.User{ID: 2, Password: string(hash)}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/login",
			strings.NewReader(`{"email":"alice@example.com","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		m.AssertExpectations(t)
	})
}

func TestUser_ResetPassword(t *testing.T) {
	m := new(mockUserRepo)
	router := newTestRouter(t, m)
	m.On("GetUserByEmail", mock.Anything, mock.Anything).Return((*model.User)(nil), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/user/reset",
		strings.NewReader(`{"email":"ghost@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&body)
	assert.Contains(t, body.Message, "reset link")
}

func TestUser_Status(t *testing.T) {
	m := new(mockUserRepo)
	router := newTestRouter(t, m)

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/test", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Result string `json:"result"`
		}
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&body)
		assert.Equal(t, "anonymous", body.Result)
	})

	t.Run("authorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/test", nil)
		addAuthCookie(t, req, 77, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Result string `json:"result"`
		}
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&body)
		assert.Contains(t, body.Result, "User ID = 77")
	})
}
