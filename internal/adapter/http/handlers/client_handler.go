package handlers

import (
	"errors"
	"net/http"

	request "claims_xpto/internal/adapter/http/dto/request"
	response "claims_xpto/internal/adapter/http/dto/response"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase"
	"claims_xpto/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/client_usecase.go -destination=mocks/mock_client_usecase.go -package=mocks

var (
	errInvalidWriteOffPayload = pkg.NewDomainErrorSimple("INVALID_WRITE_OFF_INPUT", "Invalid write-off payload", http.StatusBadRequest)
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// GetWriteOff godoc
// @Summary      Get a client's write-off percentages
// @Tags         clients
// @Produce      json
// @Param        client_id  path      string  true  "Client ID"
// @Success      200        {object}  response.WriteOffResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /clients/{client_id}/write-off [get]
func (h *ClientHandler) GetWriteOff(c *gin.Context) {
	p, err := h.usecase.GetWriteOff(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWriteOff(p))
}

// PutWriteOff godoc
// @Summary      Set a client's write-off percentages
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client_id  path      string                   true  "Client ID"
// @Param        write_off  body      request.WriteOffRequest  true  "Percentages"
// @Success      200        {object}  response.WriteOffResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /clients/{client_id}/write-off [put]
func (h *ClientHandler) PutWriteOff(c *gin.Context) {
	var payload request.WriteOffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidWriteOffPayload)
		return
	}

	p, err := h.usecase.PutWriteOff(c.Request.Context(), entities.WriteOffPercentages{
		ClientID:   c.Param("client_id"),
		Borderline: *payload.Borderline,
		Total:      *payload.Total,
		Salvage:    *payload.Salvage,
	})
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWriteOff(p))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return errInvalidRequest.WithMessage(err.Error())
	case errors.Is(err, usecase.ErrInvalidWriteOffPercentage):
		return errInvalidWriteOffPayload.WithMessage(err.Error())
	case errors.Is(err, usecase.ErrWriteOffNotFound):
		return pkg.NewDomainErrorSimple("WRITE_OFF_NOT_FOUND", "Write-off percentages not found for this client", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
