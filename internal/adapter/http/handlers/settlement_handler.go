package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "claims_xpto/internal/adapter/http/dto/response"
	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/usecase"
	"claims_xpto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=../../../usecase/settlement_usecase.go -destination=mocks/mock_settlement_usecase.go -package=mocks

// payloadKey is the envelope key of the provider payload in a settlement
// request. A body without it is taken as the bare payload.
const payloadKey = "payment_payload"

// SettlementHandler handles FRC payouts.
type SettlementHandler struct {
	usecase  usecase.ISettlementUseCase
	mockMode bool
}

func NewSettlementHandler(uc usecase.ISettlementUseCase, mockMode bool) *SettlementHandler {
	return &SettlementHandler{usecase: uc, mockMode: mockMode}
}

// CreateSettlement godoc
// @Summary      Settle a completed FRC
// @Description  Pays out the FRC actual grand total through Mercado Pago. transaction_amount in the payload is ignored.
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        frc_id   path      string                     true  "FRC ID"
// @Param        payment  body      request.SettlementRequest  true  "Provider payload"
// @Success      201      {object}  response.SettlementResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /frc/{frc_id}/settlements [post]
func (h *SettlementHandler) CreateSettlement(c *gin.Context) {
	frcID := c.Param("frc_id")
	log := zap.L().With(zap.String("frc_id", frcID))
	log.Info("[settlement][handler] create start")

	payload, err := readPaymentPayload(c)
	if err != nil {
		if h.mockMode {
			log.Warn("[settlement][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
			payload = json.RawMessage("{}")
		} else {
			log.Warn("[settlement][handler] invalid payload", zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
	}

	created, err := h.usecase.Settle(c.Request.Context(), frcID, payload)
	if err != nil {
		log.Warn("[settlement][handler] create failed", zap.Error(err))
		writeError(c, mapSettlementError(err))
		return
	}
	log.Info("[settlement][handler] create success",
		zap.String("settlement_id", created.ID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.FromSettlement(created))
}

// ListSettlements godoc
// @Summary      Settlements of an FRC, oldest first
// @Tags         settlements
// @Produce      json
// @Param        frc_id  path      string  true  "FRC ID"
// @Success      200     {array}   response.SettlementResponse
// @Router       /frc/{frc_id}/settlements [get]
func (h *SettlementHandler) ListSettlements(c *gin.Context) {
	list, err := h.usecase.ListByFRCID(c.Request.Context(), c.Param("frc_id"))
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlements(list))
}

// GetLatestSettlement godoc
// @Summary      Latest settlement of an FRC
// @Tags         settlements
// @Produce      json
// @Param        frc_id  path      string  true  "FRC ID"
// @Success      200     {object}  response.SettlementResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /frc/{frc_id}/settlements/latest [get]
func (h *SettlementHandler) GetLatestSettlement(c *gin.Context) {
	s, err := h.usecase.GetLatest(c.Request.Context(), c.Param("frc_id"))
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlement(s))
}

// GetSettlement godoc
// @Summary      Get a settlement
// @Tags         settlements
// @Produce      json
// @Param        settlement_id  path      string  true  "Settlement ID"
// @Success      200            {object}  response.SettlementResponse
// @Failure      404            {object}  pkg.HTTPError
// @Router       /settlements/{settlement_id} [get]
func (h *SettlementHandler) GetSettlement(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("settlement_id"))
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlement(s))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope[payloadKey]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New(payloadKey + " cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, costing.ErrUnknownProcessType):
		return unknownProcessTypeError(err)
	case errors.Is(err, usecase.ErrInvalidFRCID), errors.Is(err, usecase.ErrInvalidSettlementPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidSettlementAmount):
		return pkg.NewDomainErrorSimple("INVALID_SETTLEMENT_AMOUNT", "FRC actual total must be positive to settle", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFRCNotFound):
		return pkg.NewDomainErrorSimple("FRC_NOT_FOUND", "FRC not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFRCNotCompleted):
		return pkg.NewDomainErrorSimple("FRC_NOT_COMPLETED", "FRC not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrFRCAlreadySettled):
		return pkg.NewDomainErrorSimple("FRC_ALREADY_SETTLED", "FRC already has an approved settlement", http.StatusConflict)
	case errors.Is(err, usecase.ErrSettlementNotFound):
		return pkg.NewDomainErrorSimple("SETTLEMENT_NOT_FOUND", "Settlement not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
