package routes

import (
	"log"
	_ "oficina_mecanica/docs" // This will be auto-generated
	"oficina_mecanica/internal/adapter/http/handlers"
	repository2 "oficina_mecanica/internal/adapter/persistence/repository"
	"oficina_mecanica/internal/infrastructure/database"
	"oficina_mecanica/internal/infrastructure/payments"
	"oficina_mecanica/internal/infrastructure/reports"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/internal/usecase/interfaces"
	"oficina_mecanica/pkg"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
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
	locks := pkg.NewKeyLock()

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	mechanicRepo := repository2.NewMechanicDynamoRepository(ddb)
	partRepo := repository2.NewPartDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	orderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, orderRepo, locks)
	mechanicUseCase := usecase.NewMechanicUseCase(mechanicRepo, orderRepo, locks)
	partUseCase := usecase.NewPartUseCase(partRepo, orderRepo, locks)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, orderRepo, locks)

	reportUseCase := usecase.NewReportUseCase(orderRepo, mechanicRepo, serviceRepo, partRepo, reports.NewPDFGenerator())
	orderUseCase := usecase.NewWorkOrderUseCase(orderRepo, customerRepo, mechanicRepo, serviceRepo, partRepo, reportUseCase, locks)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	mechanicHandler := handlers.NewMechanicHandler(mechanicUseCase)
	partHandler := handlers.NewPartHandler(partUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	orderHandler := handlers.NewWorkOrderHandler(orderUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	root := router.Group("")
	addPingRoutes(root)
	addWorkshopRoutes(root, workshopHandlers{
		customers: customerHandler,
		mechanics: mechanicHandler,
		parts:     partHandler,
		services:  serviceHandler,
		orders:    orderHandler,
		reports:   reportHandler,
		payments:  paymentHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
}
