package routes

import (
	"log"
	"os"

	"fitmarket/config"
	_ "fitmarket/docs" // swagger docs, generated by swag
	"fitmarket/internal/adapter/http/handlers"
	"fitmarket/internal/adapter/persistence/repository"
	"fitmarket/internal/infrastructure/backend"
	"fitmarket/internal/infrastructure/database"
	"fitmarket/internal/infrastructure/payments"
	"fitmarket/internal/usecase"
	"fitmarket/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	gin.SetMode(cfg.Server.GinMode)

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Server.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// getRoutes wires repositories, use cases and handlers for the selected
// storage mode. The strategy is chosen once here; nothing downstream
// branches on it again.
func getRoutes(cfg *config.Config) {
	tokens := usecase.NewTokenService(cfg.Auth.SecretKey)

	userRepo := repository.NewUserMemoryRepository()
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)
	trackerUseCase := usecase.NewTrackerUseCase(repository.NewTrackerMemoryStore())

	var (
		orderUseCase      usecase.IOrderUseCase
		workoutUseCase    usecase.IWorkoutUseCase
		assessmentUseCase usecase.IAssessmentUseCase
		studentUseCase    usecase.IStudentUseCase
		gymUseCase        usecase.IGymUseCase
	)

	switch cfg.Storage.Mode {
	case "api":
		log.Printf("[routes][wiring] storage_mode=api base_url=%s", cfg.Backend.BaseURL)
		client := backend.NewClient(cfg.Backend.BaseURL, backend.StaticToken(cfg.Backend.Token), cfg.Backend.Timeout)
		orderUseCase = backend.NewRemoteOrderService(client)
		workoutUseCase = backend.NewRemoteWorkoutService(client)
		assessmentUseCase = backend.NewRemoteAssessmentService(client)
		studentUseCase = backend.NewRemoteStudentService(client)
		gymUseCase = backend.NewRemoteGymService(client)
	case "dynamo":
		log.Printf("[routes][wiring] storage_mode=dynamo")
		ddb := database.ConnectDynamoDB()
		orderUseCase = usecase.NewOrderUseCase(repository.NewOrderDynamoRepository(ddb))
		workoutUseCase = usecase.NewWorkoutUseCase(repository.NewWorkoutMemoryRepository())
		assessmentUseCase = usecase.NewAssessmentUseCase(repository.NewAssessmentMemoryRepository())
		studentUseCase = usecase.NewStudentUseCase(repository.NewStudentMemoryRepository())
		gymUseCase = usecase.NewGymUseCase(repository.NewGymMemoryRepository())
	default:
		log.Printf("[routes][wiring] storage_mode=memory")
		orderUseCase = usecase.NewOrderUseCase(repository.NewOrderMemoryRepository())
		workoutUseCase = usecase.NewWorkoutUseCase(repository.NewWorkoutMemoryRepository())
		assessmentUseCase = usecase.NewAssessmentUseCase(repository.NewAssessmentMemoryRepository())
		studentUseCase = usecase.NewStudentUseCase(repository.NewStudentMemoryRepository())
		gymUseCase = usecase.NewGymUseCase(repository.NewGymMemoryRepository())
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("[routes][payments] Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	orderPaymentUseCase := usecase.NewOrderPaymentUseCase(orderUseCase, paymentGateway)

	adminUseCase := usecase.NewAdminUseCase(userRepo, gymUseCase, studentUseCase, orderUseCase)

	orderHandler := handlers.NewOrderHandler(orderUseCase, orderPaymentUseCase)
	workoutHandler := handlers.NewWorkoutHandler(workoutUseCase)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentUseCase)
	studentHandler := handlers.NewStudentHandler(studentUseCase)
	gymHandler := handlers.NewGymHandler(gymUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	trackerHandler := handlers.NewTrackerHandler(trackerUseCase)

	v1 := router.Group("/v1")
	addAuthRoutes(v1, authHandler, tokens)
	addOrderRoutes(v1, orderHandler)
	addCatalogRoutes(v1, workoutHandler, assessmentHandler, studentHandler, gymHandler)
	addAdminRoutes(v1, adminHandler)
	addTrackerRoutes(v1, trackerHandler, tokens)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
