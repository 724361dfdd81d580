package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "claims_xpto/internal/adapter/http/dto/request"
	response "claims_xpto/internal/adapter/http/dto/response"
	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/usecase"
	"claims_xpto/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/estimate_usecase.go -destination=mocks/mock_estimate_usecase.go -package=mocks

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidLineItemPayload = pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Invalid line item payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for repair estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Create an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        estimate  body      request.CreateEstimateRequest  true  "Estimate"
// @Success      201       {object}  response.EstimateResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}

	in := usecase.CreateEstimateInput{
		AssessmentID:       payload.AssessmentID,
		ClientID:           payload.ClientID,
		VehicleRetailValue: payload.VehicleRetailValue,
		LabourRate:         payload.LabourRate,
		PaintRate:          payload.PaintRate,
		VATPercentage:      payload.VATPercentage,
		LineItems:          request.ToLineItems(payload.LineItems),
	}
	if m := payload.Markups.ToEntity(); m != nil {
		in.Markups = *m
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate godoc
// @Summary      Get an estimate
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.EstimateResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// GetEstimateByAssessment godoc
// @Summary      Find the estimate of an assessment
// @Tags         estimates
// @Produce      json
// @Param        assessment_id  query     string  true  "Assessment ID"
// @Success      200            {object}  response.EstimateResponse
// @Failure      400            {object}  pkg.HTTPError
// @Failure      404            {object}  pkg.HTTPError
// @Router       /estimates [get]
func (h *EstimateHandler) GetEstimateByAssessment(c *gin.Context) {
	assessmentID := strings.TrimSpace(c.Query("assessment_id"))
	if assessmentID == "" {
		writeError(c, errInvalidRequest.WithMessage("assessment_id query parameter is required"))
		return
	}

	estimate, err := h.usecase.GetByAssessmentID(c.Request.Context(), assessmentID)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// AddLineItem godoc
// @Summary      Add a line item to a draft estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                   true  "Estimate ID"
// @Param        line         body      request.LineItemRequest  true  "Line item"
// @Success      201          {object}  response.EstimateResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/line-items [post]
func (h *EstimateHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidLineItemPayload)
		return
	}

	estimate, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("estimate_id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// UpdateLineItem godoc
// @Summary      Replace a line item of a draft estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                   true  "Estimate ID"
// @Param        line_id      path      string                   true  "Line ID"
// @Param        line         body      request.LineItemRequest  true  "Line item"
// @Success      200          {object}  response.EstimateResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/line-items/{line_id} [put]
func (h *EstimateHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidLineItemPayload)
		return
	}

	estimate, err := h.usecase.UpdateLineItem(c.Request.Context(), c.Param("estimate_id"), c.Param("line_id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// DeleteLineItem godoc
// @Summary      Delete a line item of a draft estimate
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Param        line_id      path      string  true  "Line ID"
// @Success      200          {object}  response.EstimateResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/line-items/{line_id} [delete]
func (h *EstimateHandler) DeleteLineItem(c *gin.Context) {
	estimate, err := h.usecase.DeleteLineItem(c.Request.Context(), c.Param("estimate_id"), c.Param("line_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateRates godoc
// @Summary      Update rates, VAT and markups of a draft estimate
// @Description  Every line is recalculated at the new rates.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                      true  "Estimate ID"
// @Param        rates        body      request.UpdateRatesRequest  true  "Rates"
// @Success      200          {object}  response.EstimateResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/rates [patch]
func (h *EstimateHandler) UpdateRates(c *gin.Context) {
	var payload request.UpdateRatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsEmpty() {
		writeError(c, errInvalidEstimatePayload)
		return
	}

	estimate, err := h.usecase.UpdateRates(c.Request.Context(), c.Param("estimate_id"), usecase.RatesInput{
		LabourRate:    payload.LabourRate,
		PaintRate:     payload.PaintRate,
		VATPercentage: payload.VATPercentage,
		Markups:       payload.Markups.ToEntity(),
	})
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// FinalizeEstimate godoc
// @Summary      Finalize an estimate
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.EstimateResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/finalize [patch]
func (h *EstimateHandler) FinalizeEstimate(c *gin.Context) {
	estimate, err := h.usecase.Finalize(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// GetThreshold godoc
// @Summary      Classify an estimate against the borderline write-off value
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.ThresholdResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/threshold [get]
func (h *EstimateHandler) GetThreshold(c *gin.Context) {
	view, err := h.usecase.GetThreshold(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromThreshold(view))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, costing.ErrUnknownProcessType):
		return unknownProcessTypeError(err)
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return errInvalidLineItemPayload.WithMessage(err.Error())
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidAssessmentID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidLineID),
		errors.Is(err, usecase.ErrInvalidRate),
		errors.Is(err, usecase.ErrInvalidVATPercentage),
		errors.Is(err, usecase.ErrInvalidRetailValue):
		return errInvalidRequest.WithMessage(err.Error())
	case errors.Is(err, usecase.ErrEstimateAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_EXISTS", "Estimate already exists for this assessment", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateFinalized):
		return pkg.NewDomainErrorSimple("ESTIMATE_FINALIZED", "Estimate is finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
