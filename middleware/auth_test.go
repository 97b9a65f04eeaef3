package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meetbot/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var clientID string
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		clientID = c.GetString("clientID")
		c.Status(http.StatusOK)
	})
	return r, &clientID
}

func getProtected(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthDisabledPassesThrough(t *testing.T) {
	config.AppConfig.AuthRequired = false
	r, _ := newAuthRouter(t)

	if w := getProtected(t, r, ""); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with auth disabled", w.Code)
	}
}

func TestJWTAuthRequired(t *testing.T) {
	config.AppConfig.AuthRequired = true
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() {
		config.AppConfig.AuthRequired = false
		config.AppConfig.JWTSecret = ""
	})
	r, clientID := newAuthRouter(t)

	if w := getProtected(t, r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header: status = %d, want 401", w.Code)
	}
	if w := getProtected(t, r, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("non-bearer scheme: status = %d, want 401", w.Code)
	}
	if w := getProtected(t, r, "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("invalid token: status = %d, want 401", w.Code)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "client-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if w := getProtected(t, r, "Bearer "+token); w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", w.Code)
	}
	if *clientID != "client-1" {
		t.Errorf("clientID = %q, want subject from token", *clientID)
	}
}
