package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/osunpoly/polyreg/internal/app/models"
	"github.com/osunpoly/polyreg/internal/config"
	"github.com/osunpoly/polyreg/internal/pkg/auth"
)

func newAdminRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "polyreg.test",
	})

	r := gin.New()
	r.POST("/admin/courses", NewAdminKeyMiddleware(cfg, jwtService).RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r, jwtService
}

func adminConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Username = "registrar"
	cfg.Admin.Password = "shared-admin-key"
	return cfg
}

func TestRequireAdminWithoutConfigFails(t *testing.T) {
	r, _ := newAdminRouter(t, &config.Config{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/courses", nil)
	req.Header.Set("x-admin-key", "anything")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Server not configured") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRequireAdminKeyHeader(t *testing.T) {
	r, _ := newAdminRouter(t, adminConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/courses", nil)
	req.Header.Set("x-admin-key", "shared-admin-key")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid key: status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin/courses", nil)
	req.Header.Set("x-admin-key", "wrong-key")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key: status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unauthorized") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRequireAdminAcceptsAdminToken(t *testing.T) {
	r, jwtService := newAdminRouter(t, adminConfig())

	token, _, err := jwtService.GenerateAdminToken("registrar")
	if err != nil {
		t.Fatalf("GenerateAdminToken returned error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/courses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireAdminRejectsStudentToken(t *testing.T) {
	r, jwtService := newAdminRouter(t, adminConfig())

	student := &models.User{ID: 1, MatricNumber: "ND/CS/23/0041", RoleType: models.RoleStudent}
	token, _, _, _, err := jwtService.GenerateTokenPair(student)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/courses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAdminWithoutCredentialFails(t *testing.T) {
	r, _ := newAdminRouter(t, adminConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/courses", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
