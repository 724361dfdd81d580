package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"claims_xpto/internal/domain/costing"

	"github.com/gin-gonic/gin"
)

func TestProcessTypeHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProcessTypeHandler(costing.DefaultRegistry())

	r := gin.New()
	r.GET("/v1/process-types", h.ListProcessTypes)

	w := serveJSON(r, http.MethodGet, "/v1/process-types", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	codes := ""
	for _, pt := range body {
		codes += pt["code"].(string)
	}
	if codes != "NRPBAO" {
		t.Fatalf("unexpected process types order: %s", codes)
	}
}
