package handlers

import (
	"errors"
	"net/http"
	"testing"

	"claims_xpto/internal/adapter/http/handlers/mocks"
	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdditionalsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockIAdditionalsUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAdditionalsUseCase(ctrl)
		h := NewAdditionalsHandler(uc)
		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/additionals", h.CreateAdditionals)
		r.GET("/v1/additionals/:additionals_id", h.GetAdditionals)
		r.POST("/v1/additionals/:additionals_id/line-items", h.AddLine)
		r.POST("/v1/additionals/:additionals_id/removals", h.RemoveLine)
		r.POST("/v1/additionals/:additionals_id/reversals", h.ReverseLine)
		r.PATCH("/v1/additionals/:additionals_id/line-items/:line_id/approve", h.ApproveLine)
		r.PATCH("/v1/additionals/:additionals_id/line-items/:line_id/decline", h.DeclineLine)
		return r, uc
	}

	view := usecase.AdditionalsView{
		Record: entities.AdditionalsRecord{
			ID:         "add-1",
			EstimateID: "est-1",
			LineItems: []entities.AdditionalLineItem{
				{LineItem: entities.LineItem{ID: "a-1", ProcessType: entities.ProcessTypeRepair, Total: 500}, Status: entities.AdditionalStatusPending},
			},
		},
		Totals: costing.AdditionalsTotals{PendingSubtotal: 500},
	}

	t.Run("create success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Create(gomock.Any(), "est-1").Return(view, nil)

		w := serveJSON(r, http.MethodPost, "/v1/estimates/est-1/additionals", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "add-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		totals, _ := body["totals"].(map[string]any)
		if totals["pending_subtotal"] != 500.0 {
			t.Fatalf("unexpected totals: %s", w.Body.String())
		}
	})

	t.Run("create on draft estimate", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Create(gomock.Any(), "est-1").Return(usecase.AdditionalsView{}, usecase.ErrEstimateNotFinalized)

		w := serveJSON(r, http.MethodPost, "/v1/estimates/est-1/additionals", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().GetByID(gomock.Any(), "add-9").Return(usecase.AdditionalsView{}, usecase.ErrAdditionalsNotFound)

		w := serveJSON(r, http.MethodGet, "/v1/additionals/add-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("add line", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().AddLine(gomock.Any(), "add-1", gomock.Any()).Return(view, nil)

		w := serveJSON(r, http.MethodPost, "/v1/additionals/add-1/line-items", `{"process_type":"R","description":"Door","labour_hours":1}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("removal requires line id", func(t *testing.T) {
		r, _ := build(t)
		w := serveJSON(r, http.MethodPost, "/v1/additionals/add-1/removals", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("removal of already targeted line", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().RemoveLine(gomock.Any(), "add-1", "l-1").Return(usecase.AdditionalsView{}, usecase.ErrLineAlreadyTargeted)

		w := serveJSON(r, http.MethodPost, "/v1/additionals/add-1/removals", `{"line_id":"l-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "LINE_ALREADY_TARGETED" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("reversal success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().ReverseLine(gomock.Any(), "add-1", "a-1").Return(view, nil)

		w := serveJSON(r, http.MethodPost, "/v1/additionals/add-1/reversals", `{"line_id":"a-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("approve invalid transition", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Approve(gomock.Any(), "add-1", "a-1").Return(usecase.AdditionalsView{}, usecase.ErrInvalidStatusTransition)

		w := serveJSON(r, http.MethodPatch, "/v1/additionals/add-1/line-items/a-1/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("decline without reason", func(t *testing.T) {
		r, _ := build(t)
		w := serveJSON(r, http.MethodPatch, "/v1/additionals/add-1/line-items/a-1/decline", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "DECLINE_REASON_REQUIRED" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("decline success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Decline(gomock.Any(), "add-1", "a-1", "not related").Return(view, nil)

		w := serveJSON(r, http.MethodPatch, "/v1/additionals/add-1/line-items/a-1/decline", `{"reason":"not related"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapAdditionalsError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidAdditionalsID, http.StatusBadRequest},
		{&costing.UnknownProcessTypeError{Code: "Q"}, http.StatusBadRequest},
		{usecase.ErrAdditionalsNotFound, http.StatusNotFound},
		{usecase.ErrLineItemNotFound, http.StatusNotFound},
		{usecase.ErrAdditionalsAlreadyExists, http.StatusConflict},
		{usecase.ErrInvalidReversalTarget, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapAdditionalsError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
