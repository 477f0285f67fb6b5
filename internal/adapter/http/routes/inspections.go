package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInspections = "/inspections"
)

func addInspectionRoutes(rg *gin.RouterGroup, inspectionHandler *handlers.InspectionHandler) {
	inspections := rg.Group(PathInspections)
	{
		inspections.PATCH("/:inspection_id/items/:item_key", inspectionHandler.UpdateInspectionItem)
		inspections.POST("/:inspection_id/complete", inspectionHandler.CompleteInspection)
		inspections.PATCH("/:inspection_id/final-video", inspectionHandler.SetFinalVideo)
		inspections.POST("/:inspection_id/damages", inspectionHandler.AddDamages)
		inspections.DELETE("/:inspection_id/damages/:damage_id", inspectionHandler.DeleteDamage)
	}
}
