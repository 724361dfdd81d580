package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"claims_xpto/internal/adapter/http/handlers"
	"claims_xpto/internal/adapter/http/handlers/mocks"
	"claims_xpto/internal/domain/costing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	return NewRouter(zap.NewNop(), Handlers{
		Estimate:    handlers.NewEstimateHandler(mocks.NewMockIEstimateUseCase(ctrl)),
		Additionals: handlers.NewAdditionalsHandler(mocks.NewMockIAdditionalsUseCase(ctrl)),
		FRC:         handlers.NewFRCHandler(mocks.NewMockIFRCUseCase(ctrl)),
		Client:      handlers.NewClientHandler(mocks.NewMockIClientUseCase(ctrl)),
		Settlement:  handlers.NewSettlementHandler(mocks.NewMockISettlementUseCase(ctrl), false),
		ProcessType: handlers.NewProcessTypeHandler(costing.DefaultRegistry()),
	})
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	r := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /v1/ping",
		"GET /v1/process-types",
		"GET /v1/clients/:client_id/write-off",
		"PUT /v1/clients/:client_id/write-off",
		"POST /v1/estimates",
		"GET /v1/estimates",
		"GET /v1/estimates/:estimate_id",
		"POST /v1/estimates/:estimate_id/line-items",
		"PUT /v1/estimates/:estimate_id/line-items/:line_id",
		"DELETE /v1/estimates/:estimate_id/line-items/:line_id",
		"PATCH /v1/estimates/:estimate_id/rates",
		"PATCH /v1/estimates/:estimate_id/finalize",
		"GET /v1/estimates/:estimate_id/threshold",
		"POST /v1/estimates/:estimate_id/additionals",
		"POST /v1/estimates/:estimate_id/frc",
		"GET /v1/additionals/:additionals_id",
		"POST /v1/additionals/:additionals_id/line-items",
		"POST /v1/additionals/:additionals_id/removals",
		"POST /v1/additionals/:additionals_id/reversals",
		"PATCH /v1/additionals/:additionals_id/line-items/:line_id/approve",
		"PATCH /v1/additionals/:additionals_id/line-items/:line_id/decline",
		"GET /v1/frc/:frc_id",
		"GET /v1/frc/:frc_id/summary",
		"PATCH /v1/frc/:frc_id/line-items/:line_id/decision",
		"PATCH /v1/frc/:frc_id/complete",
		"GET /v1/frc/:frc_id/decisions",
		"POST /v1/frc/:frc_id/settlements",
		"GET /v1/frc/:frc_id/settlements",
		"GET /v1/frc/:frc_id/settlements/latest",
		"GET /v1/settlements/:settlement_id",
		"GET /metrics",
		"GET /swagger/*any",
	}
	for _, route := range expected {
		if !registered[route] {
			t.Fatalf("route not registered: %s", route)
		}
	}
}

func TestNewRouter_Ping(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}
