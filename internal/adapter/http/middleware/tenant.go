package middleware

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"oficina_os/internal/domain/entities"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "oficina_os/actor"

var errMissingTenant = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid tenant credentials", http.StatusUnauthorized)

// TenantContext resolves the caller's tenant/identity for every request.
//
// With AUTH_JWT_SECRET configured it expects a Bearer token carrying
// tenant_id, role and sub claims (HS256). Without it — local/dev setups —
// it falls back to X-Tenant-Id / X-User-Id / X-User-Role headers.
//
// Authentication itself (issuing the token) happens upstream; requests that
// resolve to no tenant are rejected before reaching any handler.
func TenantContext() gin.HandlerFunc {
	secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))

	return func(c *gin.Context) {
		var actor entities.Actor
		var err error

		if secret != "" {
			actor, err = actorFromBearer(c.GetHeader("Authorization"), secret)
		} else {
			actor = actorFromHeaders(c)
		}

		if err != nil || actor.TenantID == "" {
			if err != nil {
				log.Printf("[auth][middleware] token rejected err=%v", err)
			}
			c.AbortWithStatusJSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the actor resolved by TenantContext.
func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

func actorFromBearer(header, secret string) (entities.Actor, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return entities.Actor{}, errors.New("missing bearer token")
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return entities.Actor{}, err
	}
	if !token.Valid {
		return entities.Actor{}, errors.New("invalid token")
	}

	actor := entities.Actor{
		TenantID: claimString(claims, "tenant_id"),
		UserID:   claimString(claims, "sub"),
		Role:     claimString(claims, "role"),
	}
	if actor.TenantID == "" {
		return entities.Actor{}, errors.New("token missing tenant_id claim")
	}
	return actor, nil
}

func actorFromHeaders(c *gin.Context) entities.Actor {
	return entities.Actor{
		TenantID: strings.TrimSpace(c.GetHeader("X-Tenant-Id")),
		UserID:   strings.TrimSpace(c.GetHeader("X-User-Id")),
		Role:     strings.TrimSpace(c.GetHeader("X-User-Role")),
	}
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
