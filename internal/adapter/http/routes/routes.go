package routes

import (
	"log"
	_ "oficina_os/docs" // This will be auto-generated
	"oficina_os/internal/adapter/http/handlers"
	"oficina_os/internal/adapter/http/middleware"
	repository2 "oficina_os/internal/adapter/persistence/repository"
	"oficina_os/internal/infrastructure/checklist"
	"oficina_os/internal/infrastructure/database"
	"oficina_os/internal/infrastructure/payments"
	"oficina_os/internal/usecase"
	"oficina_os/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	inspectionRepo := repository2.NewInspectionDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	templateProvider := checklist.NewStaticTemplateProvider()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, inspectionRepo)
	inspectionUseCase := usecase.NewInspectionUseCase(inspectionRepo, orderRepo, templateProvider)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, inspectionRepo, paymentGateway)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	inspectionHandler := handlers.NewInspectionHandler(inspectionUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas por tenant
	v1.Use(middleware.TenantContext())
	addOrderRoutes(v1, orderHandler, paymentHandler, inspectionHandler)
	addInspectionRoutes(v1, inspectionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
