package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ishahbak/feed-service/internal/service"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func protectedRouter(tokens service.TokenService, handlerCalled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		*handlerCalled = true
		userID, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no identity in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	token, err := tokens.Issue("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	handlerCalled := false
	router := protectedRouter(tokens, &handlerCalled)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if !handlerCalled {
		t.Error("downstream handler was not invoked for a valid token")
	}
}

func TestRequireAuth_Failures(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	otherTokens := service.NewTokenService("a-completely-different-secret-value-0", time.Hour)
	expiredTokens := service.NewTokenService(testSecret, -time.Minute)

	foreign, err := otherTokens.Issue("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	expired, err := expiredTokens.Issue("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: "Token abc"},
		{name: "bare bearer", header: "Bearer"},
		{name: "malformed token", header: "Bearer not-a-token"},
		{name: "wrong secret", header: "Bearer " + foreign},
		{name: "expired token", header: "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			router := protectedRouter(tokens, &handlerCalled)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			if handlerCalled {
				t.Error("downstream handler was invoked despite auth failure")
			}
			// Every failure mode returns the same body.
			want := `{"message":"authentication failed"}`
			if w.Body.String() != want {
				t.Errorf("body = %s, want %s", w.Body.String(), want)
			}
		})
	}
}
