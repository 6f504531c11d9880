package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ishahbak/feed-service/internal/models"
	"github.com/ishahbak/feed-service/internal/repository"
	"github.com/ishahbak/feed-service/internal/service"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type mockAuthService struct {
	registerFunc func(ctx context.Context, username, email, password string) (*service.AuthResponse, error)
	loginFunc    func(ctx context.Context, email, password string) (*service.AuthResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (*service.AuthResponse, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, username, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

func authRouter(auth service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAuthHandler(auth)
	router.POST("/api/users/register", handler.Register)
	router.POST("/api/users/login", handler.Login)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Register Tests
// =============================================================================

func TestRegisterHandler(t *testing.T) {
	auth := &mockAuthService{
		registerFunc: func(ctx context.Context, username, email, password string) (*service.AuthResponse, error) {
			return &service.AuthResponse{
				Token: "signed-token",
				User: models.UserSummary{
					ID:       "507f1f77bcf86cd799439011",
					Username: username,
					Email:    email,
				},
			}, nil
		},
	}
	router := authRouter(auth)

	w := postJSON(t, router, "/api/users/register", gin.H{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw123456",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body.String())
	}

	var response struct {
		Message string             `json:"message"`
		Token   string             `json:"token"`
		User    models.UserSummary `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if response.Token != "signed-token" {
		t.Errorf("token = %q, want %q", response.Token, "signed-token")
	}
	if response.User.Username != "alice" {
		t.Errorf("user.username = %q, want %q", response.User.Username, "alice")
	}
}

func TestRegisterHandler_BadInput(t *testing.T) {
	router := authRouter(&mockAuthService{})

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing username", body: gin.H{"email": "a@x.com", "password": "pw"}},
		{name: "missing email", body: gin.H{"username": "alice", "password": "pw"}},
		{name: "missing password", body: gin.H{"username": "alice", "email": "a@x.com"}},
		{name: "malformed email", body: gin.H{"username": "alice", "email": "not-an-email", "password": "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/users/register", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestRegisterHandler_Duplicates(t *testing.T) {
	tests := []struct {
		name        string
		repoErr     error
		wantMessage string
	}{
		{name: "duplicate email", repoErr: repository.ErrDuplicateEmail, wantMessage: "Email already registered"},
		{name: "duplicate username", repoErr: repository.ErrDuplicateUsername, wantMessage: "Username already taken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFunc: func(ctx context.Context, username, email, password string) (*service.AuthResponse, error) {
					return nil, tt.repoErr
				},
			}
			router := authRouter(auth)

			w := postJSON(t, router, "/api/users/register", gin.H{
				"username": "alice",
				"email":    "a@x.com",
				"password": "pw123456",
			})

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("message = %q, want %q", body["message"], tt.wantMessage)
			}
		})
	}
}

func TestRegisterHandler_InternalFailure(t *testing.T) {
	auth := &mockAuthService{
		registerFunc: func(ctx context.Context, username, email, password string) (*service.AuthResponse, error) {
			return nil, errors.New("mongodb: not connected")
		},
	}
	router := authRouter(auth)

	w := postJSON(t, router, "/api/users/register", gin.H{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw123456",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	// Internal detail must not leak.
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["message"] != "Server error during registration" {
		t.Errorf("message = %q leaks internal detail", body["message"])
	}
}

// =============================================================================
// Login Tests
// =============================================================================

func TestLoginHandler(t *testing.T) {
	auth := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.AuthResponse, error) {
			return &service.AuthResponse{
				Token: "signed-token",
				User: models.UserSummary{
					ID:       "507f1f77bcf86cd799439011",
					Username: "alice",
					Email:    email,
				},
			}, nil
		},
	}
	router := authRouter(auth)

	w := postJSON(t, router, "/api/users/login", gin.H{
		"email":    "a@x.com",
		"password": "pw123456",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.AuthResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}
	router := authRouter(auth)

	// Unknown email and wrong password produce byte-identical responses.
	var bodies []string
	for _, payload := range []gin.H{
		{"email": "nobody@x.com", "password": "pw123456"},
		{"email": "a@x.com", "password": "wrong"},
	} {
		w := postJSON(t, router, "/api/users/login", payload)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
		bodies = append(bodies, w.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Errorf("failure responses differ: %s vs %s", bodies[0], bodies[1])
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	router := authRouter(&mockAuthService{})

	w := postJSON(t, router, "/api/users/login", gin.H{"email": "a@x.com"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
