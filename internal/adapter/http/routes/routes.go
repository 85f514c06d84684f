package routes

import (
	_ "imoveis_xpto/docs" // swag-generated docs
	"imoveis_xpto/internal/adapter/http/handlers"
	"imoveis_xpto/internal/adapter/persistence/repository"
	"imoveis_xpto/internal/config"
	"imoveis_xpto/internal/infrastructure/database"
	"imoveis_xpto/internal/infrastructure/payments"
	"imoveis_xpto/internal/usecase"
	"imoveis_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the full dependency graph and starts the server.
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg.AWSRegion, cfg.DynamoDBEndpoint)

	userRepo := repository.NewUserDynamoRepository(ddb, cfg.RentalsTable)
	apartmentRepo := repository.NewApartmentDynamoRepository(ddb, cfg.RentalsTable, cfg.RentalsGSI1)
	contractRepo := repository.NewContractDynamoRepository(ddb, cfg.RentalsTable, cfg.RentalsGSI1)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.RentalsTable, cfg.RentalsGSI1)
	relationRepo := repository.NewRelationDynamoRepository(ddb, cfg.RentalsTable, cfg.RentalsGSI1)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	userUseCase := usecase.NewUserUseCase(userRepo, cfg.DefaultPhoneRegion)
	apartmentUseCase := usecase.NewApartmentUseCase(apartmentRepo, contractRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo, apartmentRepo, userRepo, relationRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, contractRepo, paymentGateway)
	relationshipUseCase := usecase.NewRelationshipUseCase(relationRepo, userRepo, apartmentRepo)

	userHandler := handlers.NewUserHandler(userUseCase)
	apartmentHandler := handlers.NewApartmentHandler(apartmentUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	relationshipHandler := handlers.NewRelationshipHandler(relationshipUseCase)
	aggregationHandler := handlers.NewAggregationHandler(
		apartmentUseCase, contractUseCase, paymentUseCase, relationshipUseCase, userUseCase,
	)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRentalRoutes(v1, userHandler, apartmentHandler, contractHandler, paymentHandler, relationshipHandler, aggregationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("Recovered from panic")
		c.AbortWithStatus(500)
	}))
}
