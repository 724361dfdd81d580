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

//go:generate mockgen -source=../../../usecase/additionals_usecase.go -destination=mocks/mock_additionals_usecase.go -package=mocks

type AdditionalsHandler struct {
	usecase usecase.IAdditionalsUseCase
}

func NewAdditionalsHandler(uc usecase.IAdditionalsUseCase) *AdditionalsHandler {
	return &AdditionalsHandler{usecase: uc}
}

// CreateAdditionals godoc
// @Summary      Open the additionals record of a finalized estimate
// @Tags         additionals
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      201          {object}  response.AdditionalsResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/additionals [post]
func (h *AdditionalsHandler) CreateAdditionals(c *gin.Context) {
	view, err := h.usecase.Create(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapAdditionalsError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAdditionals(view))
}

// GetAdditionals godoc
// @Summary      Get an additionals record
// @Tags         additionals
// @Produce      json
// @Param        additionals_id  path      string  true  "Additionals ID"
// @Success      200             {object}  response.AdditionalsResponse
// @Failure      404             {object}  pkg.HTTPError
// @Router       /additionals/{additionals_id} [get]
func (h *AdditionalsHandler) GetAdditionals(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("additionals_id"))
	if err != nil {
		writeError(c, mapAdditionalsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdditionals(view))
}

// AddLine godoc
// @Summary      Add a new line to an additionals record
// @Tags         additionals
// @Accept       json
// @Produce      json
// @Param        additionals_id  path      string                   true  "Additionals ID"
// @Param        line            body      request.LineItemRequest  true  "Line item"
// @Success      201             {object}  response.AdditionalsResponse
// @Failure      400             {object}  pkg.HTTPError
// @Router       /additionals/{additionals_id}/line-items [post]
func (h *AdditionalsHandler) AddLine(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidLineItemPayload)
		return
	}

	view, err := h.usecase.AddLine(c.Request.Context(), c.Param("additionals_id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapAdditionalsError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAdditionals(view))
}

// RemoveLine godoc
// @Summary      Remove an original estimate line
// @Tags         additionals
// @Accept       json
// @Produce      json
// @Param        additionals_id  path      string                     true  "Additionals ID"
// @Param        target          body      request.TargetLineRequest  true  "Estimate line"
// @Success      201             {object}  response.AdditionalsResponse
// @Failure      404             {object}  pkg.HTTPError
// @Failure      409             {object}  pkg.HTTPError
// @Router       /additionals/{additionals_id}/removals [post]
func (h *AdditionalsHandler) RemoveLine(c *gin.Context) {
	var payload request.TargetLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.RemoveLine(c.Request.Context(), c.Param("additionals_id"), payload.LineID)
	if err != nil {
		writeError(c, mapAdditionalsError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAdditionals(view))
}

// ReverseLine godoc
// @Summary      Reverse an estimate line or an approved added line
// @Tags         additionals
// @Accept       json
// @Produce      json
// @Param        additionals_id  path      string                     true  "Additionals ID"
// @Param        target          body      request.TargetLineRequest  true  "Target line"
// @Success      201             {object}  response.AdditionalsResponse
// @Failure      404             {object}  pkg.HTTPError
// @Failure      409             {object}  pkg.HTTPError
// @Router       /additionals/{additionals_id}/reversals [post]
func (h *AdditionalsHandler) ReverseLine(c *gin.Context) {
	var payload request.TargetLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.ReverseLine(c.Request.Context(), c.Param("additionals_id"), payload.LineID)
	if err != nil {
		writeError(c, mapAdditionalsError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAdditionals(view))
}

// ApproveLine godoc
// @Summary      Approve an additionals line
// @Tags         additionals
// @Produce      json
// @Param        additionals_id  path      string  true  "Additionals ID"
// @Param        line_id         path      string  true  "Line ID"
// @Success      200             {object}  response.AdditionalsResponse
// @Failure      404             {object}  pkg.HTTPError
// @Failure      409             {object}  pkg.HTTPError
// @Router       /additionals/{additionals_id}/line-items/{line_id}/approve [patch]
func (h *AdditionalsHandler) ApproveLine(c *gin.Context) {
	view, err := h.usecase.Approve(c.Request.Context(), c.Param("additionals_id"), c.Param("line_id"))
	if err != nil {
		writeError(c, mapAdditionalsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdditionals(view))
}

// DeclineLine godoc
// @Summary      Decline an additionals line
// @Tags         additionals
// @Accept       json
// @Produce      json
// @Param        additionals_id  path      string                  true  "Additionals ID"
// @Param        line_id         path      string                  true  "Line ID"
// @Param        decline         body      request.DeclineRequest  true  "Reason"
// @Success      200             {object}  response.AdditionalsResponse
// @Failure      400             {object}  pkg.HTTPError
// @Failure      409             {object}  pkg.HTTPError
// @Router       /additionals/{additionals_id}/line-items/{line_id}/decline [patch]
func (h *AdditionalsHandler) DeclineLine(c *gin.Context) {
	var payload request.DeclineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapAdditionalsError(usecase.ErrDeclineReasonRequired))
		return
	}

	view, err := h.usecase.Decline(c.Request.Context(), c.Param("additionals_id"), c.Param("line_id"), payload.Reason)
	if err != nil {
		writeError(c, mapAdditionalsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdditionals(view))
}

func mapAdditionalsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, costing.ErrUnknownProcessType):
		return unknownProcessTypeError(err)
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return errInvalidLineItemPayload.WithMessage(err.Error())
	case errors.Is(err, usecase.ErrInvalidAdditionalsID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidLineID):
		return errInvalidRequest.WithMessage(err.Error())
	case errors.Is(err, usecase.ErrDeclineReasonRequired):
		return pkg.NewDomainErrorSimple("DECLINE_REASON_REQUIRED", "Decline reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAdditionalsNotFound):
		return pkg.NewDomainErrorSimple("ADDITIONALS_NOT_FOUND", "Additionals record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFinalized):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FINALIZED", "Estimate is not finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrAdditionalsAlreadyExists):
		return pkg.NewDomainErrorSimple("ADDITIONALS_ALREADY_EXISTS", "Additionals record already exists for this estimate", http.StatusConflict)
	case errors.Is(err, usecase.ErrLineAlreadyTargeted):
		return pkg.NewDomainErrorSimple("LINE_ALREADY_TARGETED", "Line was already removed or reversed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidReversalTarget):
		return pkg.NewDomainErrorSimple("INVALID_REVERSAL_TARGET", "Only estimate lines and approved added lines can be reversed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid status transition", http.StatusConflict)
	default:
		return internalError(err)
	}
}
