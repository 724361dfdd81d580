package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"claims_xpto/internal/adapter/http/handlers/mocks"
	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		w := serveJSON(r, http.MethodPost, "/v1/estimates", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing assessment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		w := serveJSON(r, http.MethodPost, "/v1/estimates", `{"client_id":"cli-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_ESTIMATE_INPUT" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("line item without process type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		w := serveJSON(r, http.MethodPost, "/v1/estimates", `{"assessment_id":"asm-1","client_id":"cli-1","line_items":[{"description":"Door"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown process type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).
			Return(entities.Estimate{}, &costing.UnknownProcessTypeError{Code: "X"})

		w := serveJSON(r, http.MethodPost, "/v1/estimates", `{"assessment_id":"asm-1","client_id":"cli-1","line_items":[{"process_type":"x","description":"Door"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "UNKNOWN_PROCESS_TYPE" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateAlreadyExists)

		w := serveJSON(r, http.MethodPost, "/v1/estimates", `{"assessment_id":"asm-1","client_id":"cli-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		now := time.Now().UTC()
		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateEstimateInput) (entities.Estimate, error) {
				if in.AssessmentID != "asm-1" || in.ClientID != "cli-1" {
					return entities.Estimate{}, fmt.Errorf("unexpected ids: %+v", in)
				}
				if in.LabourRate == nil || *in.LabourRate != 500 || in.PaintRate != nil {
					return entities.Estimate{}, fmt.Errorf("unexpected rates: %+v", in)
				}
				if in.Markups.OEMPercentage != 10 {
					return entities.Estimate{}, fmt.Errorf("unexpected markups: %+v", in.Markups)
				}
				if len(in.LineItems) != 1 || in.LineItems[0].ProcessType != entities.ProcessTypeRepair {
					return entities.Estimate{}, fmt.Errorf("unexpected lines: %+v", in.LineItems)
				}
				return entities.Estimate{
					ID:           "est-1",
					AssessmentID: in.AssessmentID,
					ClientID:     in.ClientID,
					Status:       entities.EstimateStatusDraft,
					LineItems:    []entities.LineItem{{ID: "l-1", ProcessType: entities.ProcessTypeRepair, Description: "Door", Total: 1000}},
					Subtotal:     1000,
					VATAmount:    150,
					Total:        1150,
					CreatedAt:    now,
					UpdatedAt:    now,
				}, nil
			})

		w := serveJSON(r, http.MethodPost, "/v1/estimates",
			`{"assessment_id":"asm-1","client_id":"cli-1","labour_rate":500,"markups":{"oem_percentage":10},"line_items":[{"process_type":"r","description":"Door","labour_hours":2}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["estimate_id"] != "est-1" || body["status"] != "draft" || body["total"] != 1150.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:estimate_id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusFinalized}, nil)

		w := serveJSON(r, http.MethodGet, "/v1/estimates/est-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "finalized" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:estimate_id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		w := serveJSON(r, http.MethodGet, "/v1/estimates/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "ESTIMATE_NOT_FOUND" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("by assessment requires query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates", h.GetEstimateByAssessment)

		w := serveJSON(r, http.MethodGet, "/v1/estimates", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by assessment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates", h.GetEstimateByAssessment)

		uc.EXPECT().GetByAssessmentID(gomock.Any(), "asm-1").Return(entities.Estimate{ID: "est-1", AssessmentID: "asm-1"}, nil)

		w := serveJSON(r, http.MethodGet, "/v1/estimates?assessment_id=asm-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_LineItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockIEstimateUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)
		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/line-items", h.AddLineItem)
		r.PUT("/v1/estimates/:estimate_id/line-items/:line_id", h.UpdateLineItem)
		r.DELETE("/v1/estimates/:estimate_id/line-items/:line_id", h.DeleteLineItem)
		return r, uc
	}

	t.Run("add success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().AddLineItem(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, item entities.LineItem) (entities.Estimate, error) {
				if item.ProcessType != entities.ProcessTypePaint || item.Description != "Bonnet" {
					return entities.Estimate{}, fmt.Errorf("unexpected item: %+v", item)
				}
				return entities.Estimate{ID: "est-1", LineItems: []entities.LineItem{item}}, nil
			})

		w := serveJSON(r, http.MethodPost, "/v1/estimates/est-1/line-items", `{"process_type":"p","description":" Bonnet ","paint_panels":1.5}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("add invalid payload", func(t *testing.T) {
		r, _ := build(t)
		w := serveJSON(r, http.MethodPost, "/v1/estimates/est-1/line-items", `{"description":"Bonnet"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add to finalized estimate", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().AddLineItem(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateFinalized)

		w := serveJSON(r, http.MethodPost, "/v1/estimates/est-1/line-items", `{"process_type":"R","description":"Door"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("update missing line", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().UpdateLineItem(gomock.Any(), "est-1", "l-9", gomock.Any()).Return(entities.Estimate{}, usecase.ErrLineItemNotFound)

		w := serveJSON(r, http.MethodPut, "/v1/estimates/est-1/line-items/l-9", `{"process_type":"R","description":"Door"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update invalid line", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().UpdateLineItem(gomock.Any(), "est-1", "l-1", gomock.Any()).
			Return(entities.Estimate{}, fmt.Errorf("%w: negative labour hours", usecase.ErrInvalidLineItem))

		w := serveJSON(r, http.MethodPut, "/v1/estimates/est-1/line-items/l-1", `{"process_type":"R","description":"Door","labour_hours":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_LINE_ITEM" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("delete success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().DeleteLineItem(gomock.Any(), "est-1", "l-1").Return(entities.Estimate{ID: "est-1"}, nil)

		w := serveJSON(r, http.MethodDelete, "/v1/estimates/est-1/line-items/l-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_RatesFinalizeThreshold(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockIEstimateUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)
		r := gin.New()
		r.PATCH("/v1/estimates/:estimate_id/rates", h.UpdateRates)
		r.PATCH("/v1/estimates/:estimate_id/finalize", h.FinalizeEstimate)
		r.GET("/v1/estimates/:estimate_id/threshold", h.GetThreshold)
		return r, uc
	}

	t.Run("rates empty body", func(t *testing.T) {
		r, _ := build(t)
		w := serveJSON(r, http.MethodPatch, "/v1/estimates/est-1/rates", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rates success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().UpdateRates(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.RatesInput) (entities.Estimate, error) {
				if in.LabourRate != nil || in.VATPercentage == nil || *in.VATPercentage != 16 || in.Markups != nil {
					return entities.Estimate{}, fmt.Errorf("unexpected rates: %+v", in)
				}
				return entities.Estimate{ID: "est-1", VATPercentage: 16}, nil
			})

		w := serveJSON(r, http.MethodPatch, "/v1/estimates/est-1/rates", `{"vat_percentage":16}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("rates invalid", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().UpdateRates(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{}, usecase.ErrInvalidRate)

		w := serveJSON(r, http.MethodPatch, "/v1/estimates/est-1/rates", `{"labour_rate":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("finalize success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Finalize(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusFinalized}, nil)

		w := serveJSON(r, http.MethodPatch, "/v1/estimates/est-1/finalize", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("threshold", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().GetThreshold(gomock.Any(), "est-1").Return(usecase.ThresholdView{
			EstimateID:    "est-1",
			EstimateTotal: 6500,
			WriteOff:      costing.WriteOffValues{Borderline: 10000},
			Threshold:     costing.CalculateEstimateThreshold(6500, 10000),
		}, nil)

		w := serveJSON(r, http.MethodGet, "/v1/estimates/est-1/threshold", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["color"] != "orange" || body["show_warning"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidEstimateID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrInvalidVATPercentage); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(&costing.UnknownProcessTypeError{Code: "Z", LineID: "l-1"}); got.HTTPStatus != http.StatusBadRequest || got.Code != "UNKNOWN_PROCESS_TYPE" {
		t.Fatalf("expected 400 UNKNOWN_PROCESS_TYPE, got %+v", got)
	}
	if got := mapEstimateError(usecase.ErrEstimateAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEstimateError(usecase.ErrEstimateFinalized); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
