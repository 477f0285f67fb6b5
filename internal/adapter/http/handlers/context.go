package handlers

import (
	"net/http"

	"oficina_os/internal/adapter/http/middleware"
	"oficina_os/internal/domain/entities"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

// requireActor pulls the tenant actor resolved by the middleware. Handlers
// are only reachable behind TenantContext, so a miss means a wiring bug;
// it still answers 401 instead of panicking.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid tenant credentials", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.Actor{}, false
	}
	return actor, true
}
