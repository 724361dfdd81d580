package routes

import (
	"claims_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients     = "/clients"
	PathEstimates   = "/estimates"
	PathAdditionals = "/additionals"
	PathFRC         = "/frc"
	PathSettlements = "/settlements"

	PathProcessTypes = "/process-types"
)

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("/:client_id/write-off", clientHandler.GetWriteOff)
		clients.PUT("/:client_id/write-off", clientHandler.PutWriteOff)
	}
}

func addEstimateRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	additionalsHandler *handlers.AdditionalsHandler,
	frcHandler *handlers.FRCHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.GetEstimateByAssessment)
		estimates.GET("/:estimate_id", estimateHandler.GetEstimate)
		estimates.POST("/:estimate_id/line-items", estimateHandler.AddLineItem)
		estimates.PUT("/:estimate_id/line-items/:line_id", estimateHandler.UpdateLineItem)
		estimates.DELETE("/:estimate_id/line-items/:line_id", estimateHandler.DeleteLineItem)
		estimates.PATCH("/:estimate_id/rates", estimateHandler.UpdateRates)
		estimates.PATCH("/:estimate_id/finalize", estimateHandler.FinalizeEstimate)
		estimates.GET("/:estimate_id/threshold", estimateHandler.GetThreshold)

		// Downstream records are opened from their estimate.
		estimates.POST("/:estimate_id/additionals", additionalsHandler.CreateAdditionals)
		estimates.POST("/:estimate_id/frc", frcHandler.StartFRC)
	}
}

func addAdditionalsRoutes(rg *gin.RouterGroup, additionalsHandler *handlers.AdditionalsHandler) {
	additionals := rg.Group(PathAdditionals)
	{
		additionals.GET("/:additionals_id", additionalsHandler.GetAdditionals)
		additionals.POST("/:additionals_id/line-items", additionalsHandler.AddLine)
		additionals.POST("/:additionals_id/removals", additionalsHandler.RemoveLine)
		additionals.POST("/:additionals_id/reversals", additionalsHandler.ReverseLine)
		additionals.PATCH("/:additionals_id/line-items/:line_id/approve", additionalsHandler.ApproveLine)
		additionals.PATCH("/:additionals_id/line-items/:line_id/decline", additionalsHandler.DeclineLine)
	}
}

func addFRCRoutes(rg *gin.RouterGroup, frcHandler *handlers.FRCHandler, settlementHandler *handlers.SettlementHandler) {
	frc := rg.Group(PathFRC)
	{
		frc.GET("/:frc_id", frcHandler.GetFRC)
		frc.GET("/:frc_id/summary", frcHandler.GetSummary)
		frc.PATCH("/:frc_id/line-items/:line_id/decision", frcHandler.DecideLine)
		frc.PATCH("/:frc_id/complete", frcHandler.CompleteFRC)
		frc.GET("/:frc_id/decisions", frcHandler.ListDecisions)

		frc.POST("/:frc_id/settlements", settlementHandler.CreateSettlement)
		frc.GET("/:frc_id/settlements", settlementHandler.ListSettlements)
		frc.GET("/:frc_id/settlements/latest", settlementHandler.GetLatestSettlement)
	}
}

func addSettlementRoutes(rg *gin.RouterGroup, settlementHandler *handlers.SettlementHandler) {
	rg.GET(PathSettlements+"/:settlement_id", settlementHandler.GetSettlement)
}

func addProcessTypeRoutes(rg *gin.RouterGroup, processTypeHandler *handlers.ProcessTypeHandler) {
	rg.GET(PathProcessTypes, processTypeHandler.ListProcessTypes)
}
