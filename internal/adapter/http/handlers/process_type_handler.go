package handlers

import (
	"net/http"

	response "claims_xpto/internal/adapter/http/dto/response"
	"claims_xpto/internal/domain/costing"

	"github.com/gin-gonic/gin"
)

// ProcessTypeHandler exposes the process-type registry the calculator prices
// lines with.
type ProcessTypeHandler struct {
	registry costing.Registry
}

func NewProcessTypeHandler(registry costing.Registry) *ProcessTypeHandler {
	return &ProcessTypeHandler{registry: registry}
}

// ListProcessTypes godoc
// @Summary      List the registered process types
// @Tags         process-types
// @Produce      json
// @Success      200  {array}  response.ProcessTypeResponse
// @Router       /process-types [get]
func (h *ProcessTypeHandler) ListProcessTypes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromProcessTypes(h.registry.All()))
}
