package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, paymentHandler *handlers.PaymentHandler, inspectionHandler *handlers.InspectionHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/status", orderHandler.UpdateOrderStatus)
		orders.PATCH("/:order_id/discount", orderHandler.ApplyDiscount)
		orders.POST("/:order_id/items", orderHandler.AddOrderItem)

		orders.POST("/:order_id/payments", paymentHandler.AddPayment)
		orders.GET("/:order_id/payments", paymentHandler.ListPayments)
		orders.GET("/:order_id/balance", paymentHandler.GetBalance)

		orders.POST("/:order_id/inspections", inspectionHandler.CreateInspection)
		orders.GET("/:order_id/inspections/:type", inspectionHandler.GetInspection)
	}
}
