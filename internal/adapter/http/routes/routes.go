package routes

import (
	_ "claims_xpto/docs"
	"claims_xpto/internal/adapter/http/handlers"
	"claims_xpto/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Estimate    *handlers.EstimateHandler
	Additionals *handlers.AdditionalsHandler
	FRC         *handlers.FRCHandler
	Client      *handlers.ClientHandler
	Settlement  *handlers.SettlementHandler
	ProcessType *handlers.ProcessTypeHandler
}

// NewRouter builds the gin engine with middlewares, swagger, metrics and the
// /v1 routes.
func NewRouter(log *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProcessTypeRoutes(v1, h.ProcessType)
	addClientRoutes(v1, h.Client)
	addEstimateRoutes(v1, h.Estimate, h.Additionals, h.FRC)
	addAdditionalsRoutes(v1, h.Additionals)
	addFRCRoutes(v1, h.FRC, h.Settlement)
	addSettlementRoutes(v1, h.Settlement)

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))
}
