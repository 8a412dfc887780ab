package routes

import (
	"log"
	_ "propostas_xpto/docs" // This will be auto-generated
	"propostas_xpto/internal/adapter/http/handlers"
	repository2 "propostas_xpto/internal/adapter/persistence/repository"
	"propostas_xpto/internal/infrastructure/config"
	"propostas_xpto/internal/infrastructure/database"
	"propostas_xpto/internal/infrastructure/gateway"
	"propostas_xpto/internal/infrastructure/storage"
	"propostas_xpto/internal/usecase"
	"propostas_xpto/internal/usecase/interfaces"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(":" + strconv.Itoa(cfg.ServicePort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()
	receiptRepo := repository2.NewDecisionReceiptDynamoRepository(ddb)

	var portalGateway interfaces.IProposalGateway
	pg, err := gateway.NewPortalGateway(cfg.Portal.BaseURL)
	if err != nil {
		log.Fatalf("Portal gateway not configured: %v", err)
	}
	portalGateway = pg

	var archive interfaces.ISignatureArchive
	if cfg.Archive.Endpoint != "" {
		sa, err := storage.NewSignatureArchive(cfg.Archive.Endpoint, cfg.Archive.AccessKey, cfg.Archive.SecretKey, cfg.Archive.Bucket, cfg.Archive.UseSSL)
		if err != nil {
			log.Printf("Signature archive not configured: %v", err)
		} else {
			archive = sa
		}
	}

	flowUseCase := usecase.NewProposalFlowUseCase(portalGateway, receiptRepo, archive)
	flowHandler := handlers.NewProposalFlowHandler(flowUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalFlowRoutes(v1, flowHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
