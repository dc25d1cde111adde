package routes

import (
	"log"
	"os"
	"strconv"

	_ "patoz_consumer/docs" // swag-generated docs
	"patoz_consumer/internal/adapter/http/handlers"
	"patoz_consumer/internal/adapter/http/ws"
	repository2 "patoz_consumer/internal/adapter/persistence/repository"
	"patoz_consumer/internal/infrastructure/database"
	"patoz_consumer/internal/infrastructure/seed"
	"patoz_consumer/internal/usecase"
	"patoz_consumer/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	deviceRepo, historyRepo := buildStorageBackend()
	estimateRepo := repository2.NewEstimateMemoryRepository(seed.Estimates())
	storeRepo := repository2.NewStoreMemoryRepository(seed.Stores(), seed.DefaultRegion())

	hub := ws.NewHub()
	go hub.Run()

	deviceUseCase := usecase.NewDeviceUseCase(deviceRepo, historyRepo, hub)
	historyUseCase := usecase.NewHistoryUseCase(historyRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, deviceRepo, hub)
	storeUseCase := usecase.NewStoreUseCase(storeRepo)

	deviceHandler := handlers.NewDeviceHandler(deviceUseCase)
	historyHandler := handlers.NewHistoryHandler(historyUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	storeHandler := handlers.NewStoreHandler(storeUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConsumerRoutes(v1, deviceHandler, historyHandler, estimateHandler, storeHandler)
	v1.GET("/ws/repairs", hub.HandleConnection)
}

// buildStorageBackend picks the persistence layer. The demo deployment runs
// on the seeded in-memory stores; STORAGE_BACKEND=dynamodb switches the
// device and history tables to DynamoDB (estimates and stores stay static).
func buildStorageBackend() (interfaces.IDeviceRepository, interfaces.IHistoryRepository) {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "dynamodb" {
		log.Printf("[routes] storage backend: dynamodb")
		ddb := database.ConnectDynamoDB()
		return repository2.NewDeviceDynamoRepository(ddb), repository2.NewHistoryDynamoRepository(ddb)
	}

	log.Printf("[routes] storage backend: memory (seeded)")
	return repository2.NewDeviceMemoryRepository(seed.Devices()), repository2.NewHistoryMemoryRepository(seed.History())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
