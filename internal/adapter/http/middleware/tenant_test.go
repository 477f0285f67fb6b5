package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_os/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newRouterWithEcho(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TenantContext())
	r.GET("/whoami", func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no actor"})
			return
		}
		c.JSON(http.StatusOK, actor)
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestTenantContext_HeaderFallback(t *testing.T) {
	t.Run("resolves actor from headers", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "")
		r := newRouterWithEcho(t)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Tenant-Id", " tenant-1 ")
		req.Header.Set("X-User-Id", "user-1")
		req.Header.Set("X-User-Role", entities.RoleMecanico)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); body != `{"tenant_id":"tenant-1","user_id":"user-1","role":"mecanico"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("missing tenant header is rejected", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "")
		r := newRouterWithEcho(t)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-User-Id", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestTenantContext_Bearer(t *testing.T) {
	const secret = "test-secret"

	t.Run("valid token resolves actor", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", secret)
		r := newRouterWithEcho(t)

		token := signToken(t, secret, jwt.MapClaims{"tenant_id": "tenant-1", "sub": "user-1", "role": entities.RoleAtendente})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); body != `{"tenant_id":"tenant-1","user_id":"user-1","role":"atendente"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("headers are ignored when a secret is configured", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", secret)
		r := newRouterWithEcho(t)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Tenant-Id", "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong signature is rejected", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", secret)
		r := newRouterWithEcho(t)

		token := signToken(t, "other-secret", jwt.MapClaims{"tenant_id": "tenant-1", "sub": "user-1"})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token without tenant_id is rejected", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", secret)
		r := newRouterWithEcho(t)

		token := signToken(t, secret, jwt.MapClaims{"sub": "user-1"})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
