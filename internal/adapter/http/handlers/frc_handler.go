package handlers

import (
	"errors"
	"net/http"

	request "claims_xpto/internal/adapter/http/dto/request"
	response "claims_xpto/internal/adapter/http/dto/response"
	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/usecase"
	"claims_xpto/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/frc_usecase.go -destination=mocks/mock_frc_usecase.go -package=mocks

// HeaderActor identifies the reviewer when the decision body carries none.
const HeaderActor = "X-Actor"

var (
	errInvalidDecisionPayload = pkg.NewDomainErrorSimple("INVALID_DECISION", "Invalid decision payload", http.StatusBadRequest)
)

// FRCHandler handles final repair cost runs.
type FRCHandler struct {
	usecase usecase.IFRCUseCase
}

func NewFRCHandler(uc usecase.IFRCUseCase) *FRCHandler {
	return &FRCHandler{usecase: uc}
}

// StartFRC godoc
// @Summary      Start the FRC run of a finalized estimate
// @Tags         frc
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      201          {object}  response.FRCResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/frc [post]
func (h *FRCHandler) StartFRC(c *gin.Context) {
	f, err := h.usecase.Start(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFRC(f))
}

// GetFRC godoc
// @Summary      Get an FRC run
// @Tags         frc
// @Produce      json
// @Param        frc_id  path      string  true  "FRC ID"
// @Success      200     {object}  response.FRCResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /frc/{frc_id} [get]
func (h *FRCHandler) GetFRC(c *gin.Context) {
	f, err := h.usecase.GetByID(c.Request.Context(), c.Param("frc_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFRC(f))
}

// GetSummary godoc
// @Summary      Quoted vs actual reconciliation of an FRC run
// @Tags         frc
// @Produce      json
// @Param        frc_id  path      string  true  "FRC ID"
// @Success      200     {object}  response.FRCSummaryResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /frc/{frc_id}/summary [get]
func (h *FRCHandler) GetSummary(c *gin.Context) {
	view, err := h.usecase.Summary(c.Request.Context(), c.Param("frc_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFRCSummary(view))
}

// DecideLine godoc
// @Summary      Record a decision on an FRC line
// @Tags         frc
// @Accept       json
// @Produce      json
// @Param        frc_id    path      string                   true   "FRC ID"
// @Param        line_id   path      string                   true   "Line ID"
// @Param        X-Actor   header    string                   false  "Reviewer"
// @Param        decision  body      request.DecisionRequest  true   "Decision"
// @Success      200       {object}  response.FRCResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Failure      422       {object}  pkg.HTTPError
// @Router       /frc/{frc_id}/line-items/{line_id}/decision [patch]
func (h *FRCHandler) DecideLine(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidDecisionPayload)
		return
	}

	f, err := h.usecase.Decide(c.Request.Context(), c.Param("frc_id"), c.Param("line_id"), usecase.DecideInput{
		Decision:    payload.ResolveDecision(),
		ActualTotal: payload.ActualTotal,
		Actual:      payload.ResolveActual(),
		Reason:      payload.Reason,
		Actor:       payload.ResolveActor(c.GetHeader(HeaderActor)),
	})
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFRC(f))
}

// CompleteFRC godoc
// @Summary      Complete an FRC run
// @Tags         frc
// @Produce      json
// @Param        frc_id  path      string  true  "FRC ID"
// @Success      200     {object}  response.FRCResponse
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /frc/{frc_id}/complete [patch]
func (h *FRCHandler) CompleteFRC(c *gin.Context) {
	f, err := h.usecase.Complete(c.Request.Context(), c.Param("frc_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFRC(f))
}

// ListDecisions godoc
// @Summary      Decision log of an FRC run
// @Tags         frc
// @Produce      json
// @Param        frc_id  path      string  true  "FRC ID"
// @Success      200     {array}   response.DecisionLogResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /frc/{frc_id}/decisions [get]
func (h *FRCHandler) ListDecisions(c *gin.Context) {
	entries, err := h.usecase.ListDecisions(c.Request.Context(), c.Param("frc_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDecisionLog(entries))
}

func mapFRCError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, costing.ErrUnknownProcessType):
		return unknownProcessTypeError(err)
	case errors.Is(err, usecase.ErrInvalidFRCID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidLineID):
		return errInvalidRequest.WithMessage(err.Error())
	case errors.Is(err, costing.ErrInvalidDecision):
		return errInvalidDecisionPayload
	case errors.Is(err, costing.ErrAdjustReasonRequired):
		return pkg.NewDomainErrorSimple("ADJUST_REASON_REQUIRED", "Adjust reason is required", http.StatusUnprocessableEntity)
	case errors.Is(err, costing.ErrAdjustActualRequired):
		return pkg.NewDomainErrorSimple("ADJUST_ACTUAL_REQUIRED", "Actual total is required when adjusting", http.StatusUnprocessableEntity)
	case errors.Is(err, costing.ErrInvalidDecisionTransition):
		return pkg.NewDomainErrorSimple("INVALID_DECISION_TRANSITION", "A decided line cannot return to pending", http.StatusConflict)
	case errors.Is(err, costing.ErrFRCLinesPending):
		return pkg.NewDomainErrorSimple("FRC_LINES_PENDING", "Every line must be decided before completion", http.StatusConflict)
	case errors.Is(err, costing.ErrFRCLineInvalid):
		return pkg.NewDomainErrorSimple("FRC_LINE_INVALID", "An FRC line failed validation", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFinalized):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FINALIZED", "Estimate is not finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrFRCAlreadyStarted):
		return pkg.NewDomainErrorSimple("FRC_ALREADY_STARTED", "FRC already started for this estimate", http.StatusConflict)
	case errors.Is(err, usecase.ErrFRCCompleted):
		return pkg.NewDomainErrorSimple("FRC_COMPLETED", "FRC is completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrFRCNotFound):
		return pkg.NewDomainErrorSimple("FRC_NOT_FOUND", "FRC not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFRCLineNotFound):
		return pkg.NewDomainErrorSimple("FRC_LINE_NOT_FOUND", "FRC line not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
