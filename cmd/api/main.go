package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "claims_xpto/docs"
	"claims_xpto/internal/adapter/http/handlers"
	"claims_xpto/internal/adapter/http/routes"
	"claims_xpto/internal/adapter/persistence/repository"
	"claims_xpto/internal/config"
	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/infrastructure/database"
	"claims_xpto/internal/infrastructure/logger"
	"claims_xpto/internal/infrastructure/metrics"
	"claims_xpto/internal/infrastructure/payments"
	"claims_xpto/internal/usecase"
	"claims_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Claims Costing API
// @version         1.0
// @description     Vehicle damage estimates, additionals, final repair cost reconciliation and settlements backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := buildRouter(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to startup the application", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		zlog.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildRouter(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (*gin.Engine, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, zlog)
	if err != nil {
		return nil, err
	}

	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.Tables.Estimates)
	additionalsRepo := repository.NewAdditionalsDynamoRepository(ddb, cfg.Tables.Additionals)
	frcRepo := repository.NewFRCDynamoRepository(ddb, cfg.Tables.FRCs)
	decisionRepo := repository.NewFRCDecisionLogDynamoRepository(ddb, cfg.Tables.FRCDecisions)
	writeOffRepo := repository.NewWriteOffDynamoRepository(ddb, cfg.Tables.WriteOffs)
	settlementRepo := repository.NewSettlementDynamoRepository(ddb, cfg.Tables.Settlements)

	// A nil gateway makes settlements fail with a clear error instead of
	// blocking startup.
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, zlog)
	if err != nil {
		zlog.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	m := metrics.New(nil)
	calc := costing.NewCalculator(costing.DefaultRegistry())

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, writeOffRepo, calc, cfg.Defaults, m)
	additionalsUseCase := usecase.NewAdditionalsUseCase(additionalsRepo, estimateRepo, calc, m)
	frcUseCase := usecase.NewFRCUseCase(frcRepo, decisionRepo, estimateRepo, additionalsRepo, calc, m)
	clientUseCase := usecase.NewClientUseCase(writeOffRepo)
	settlementUseCase := usecase.NewSettlementUseCase(settlementRepo, frcRepo, paymentGateway, calc, cfg.Payments, m)

	return routes.NewRouter(zlog, routes.Handlers{
		Estimate:    handlers.NewEstimateHandler(estimateUseCase),
		Additionals: handlers.NewAdditionalsHandler(additionalsUseCase),
		FRC:         handlers.NewFRCHandler(frcUseCase),
		Client:      handlers.NewClientHandler(clientUseCase),
		Settlement:  handlers.NewSettlementHandler(settlementUseCase, cfg.Payments.Mock),
		ProcessType: handlers.NewProcessTypeHandler(calc.Registry()),
	}), nil
}
