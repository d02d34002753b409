package routes

import (
	"context"
	"os"
	"strconv"
	"time"

	_ "enviroflow/docs" // generated by swag init
	"enviroflow/internal/adapter/http/handlers"
	"enviroflow/internal/adapter/persistence/repository"
	"enviroflow/internal/infrastructure/config"
	"enviroflow/internal/infrastructure/export"
	"enviroflow/internal/infrastructure/logging"
	"enviroflow/internal/usecase"
	"enviroflow/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	logger := logging.GetLogger()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}
	logging.SetLevel(cfg.LogLevel)

	lines, runs, err := repository.NewWarehouse(context.Background(), cfg)
	if err != nil {
		logger.WithError(err).WithField("driver", cfg.WarehouseDriver).Fatal("failed to connect to the warehouse")
	}

	router := NewRouter(cfg, lines, runs)

	logger.WithFields(logrus.Fields{"port": cfg.Port, "driver": cfg.WarehouseDriver}).Info("starting quote ingestion api")
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.WithError(err).Fatal("failed to startup the application")
	}
}

// NewRouter wires use cases and handlers on top of the given warehouse.
func NewRouter(cfg config.Config, lines interfaces.IQuoteLineRepository, runs interfaces.IIngestionRunRepository) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	quoteUseCase := usecase.NewQuoteIngestUseCase(lines, runs, export.NewExcelExporter())
	runUseCase := usecase.NewIngestionRunUseCase(runs)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	runHandler := handlers.NewIngestionRunHandler(runUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, runHandler)
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.GetLogger().WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition", "X-Ingestion-Status")
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))
}
