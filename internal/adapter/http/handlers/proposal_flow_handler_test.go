package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"propostas_xpto/internal/adapter/http/handlers/mocks"
	"propostas_xpto/internal/domain/entities"
	"propostas_xpto/internal/usecase"
	"propostas_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func flowRouter(h *ProposalFlowHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/public/proposals")
	g.GET("/:token", h.LoadProposal)
	g.GET("/:token/quote", h.GetQuote)
	g.GET("/:token/decisions", h.ListDecisions)
	g.GET("/:token/decisions/:id", h.GetDecision)
	g.POST("/:token/selection/toggle", h.ToggleItem)
	g.POST("/:token/selection/set-all", h.SetAllItems)
	g.POST("/:token/selection/submit", h.SubmitSelection)
	g.POST("/:token/payment", h.SetPayment)
	g.POST("/:token/sign", h.SubmitSignature)
	g.POST("/:token/reject", h.RejectProposal)
	return r
}

func TestProposalFlowHandler_LoadProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown token maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().Load(gomock.Any(), "tok-x").Return(usecase.FlowSnapshot{}, interfaces.ErrProposalNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/public/proposals/tok-x", nil)
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != "PROPOSAL_NOT_FOUND" {
			t.Fatalf("expected PROPOSAL_NOT_FOUND, got %v", body["code"])
		}
	})

	t.Run("expired proposal maps to 410", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().Load(gomock.Any(), "tok-x").Return(usecase.FlowSnapshot{}, usecase.ErrProposalExpired)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/public/proposals/tok-x", nil)
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("success returns the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().Load(gomock.Any(), "tok-x").Return(usecase.FlowSnapshot{
			SessionID:  "sess-1",
			ProposalID: "prop-1",
			State:      usecase.StateView,
			Available:  true,
			Quote:      usecase.Quote{BaseTotal: 1000, FinalTotal: 940, DiscountApplied: true},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/public/proposals/tok-x", nil)
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["proposal_id"] != "prop-1" || body["state"] != "view" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProposalFlowHandler_Selection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("toggle requires a service id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/selection/toggle", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("toggle of unknown item maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().ToggleItem("tok-x", "svc-9").Return(usecase.FlowSnapshot{}, usecase.ErrUnknownItem)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/selection/toggle", bytes.NewBufferString(`{"service_id":"svc-9"}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set-all requires the included flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/selection/set-all", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set-all false reaches the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().SetAllItems("tok-x", false).Return(usecase.FlowSnapshot{State: usecase.StateSelecting}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/selection/set-all", bytes.NewBufferString(`{"included":false}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("submit with empty body is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().SubmitSelection(gomock.Any(), "tok-x", "").Return(usecase.FlowSnapshot{State: usecase.StateSigning}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/selection/submit", nil)
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("submit with no items maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().SubmitSelection(gomock.Any(), "tok-x", "").Return(usecase.FlowSnapshot{}, usecase.ErrNoItemsSelected)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/selection/submit", nil)
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProposalFlowHandler_SetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("installments out of range map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().SetPayment("tok-x", gomock.Any()).Return(usecase.FlowSnapshot{}, usecase.ErrInstallmentsOutOfRange)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/payment", bytes.NewBufferString(`{"payment_type":"prazo","payment_method":"cartao","installments":24}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != "INSTALLMENTS_OUT_OF_RANGE" {
			t.Fatalf("expected INSTALLMENTS_OUT_OF_RANGE, got %v", body["code"])
		}
	})
}

func TestProposalFlowHandler_SubmitSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing contact fields map to 400 before the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/sign", bytes.NewBufferString(`{"name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty signature maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().SubmitSignature(gomock.Any(), "tok-x", gomock.Any(), "").Return(usecase.FlowSnapshot{}, usecase.ErrSignatureEmpty)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/sign", bytes.NewBufferString(`{"name":"Ana","email":"ana@xpto.com.br"}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("double submit maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().SubmitSignature(gomock.Any(), "tok-x", gomock.Any(), "").Return(usecase.FlowSnapshot{}, usecase.ErrSubmissionInFlight)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/sign", bytes.NewBufferString(`{"name":"Ana","email":"ana@xpto.com.br"}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("portal outage maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().SubmitSignature(gomock.Any(), "tok-x", gomock.Any(), "").
			Return(usecase.FlowSnapshot{}, &interfaces.TransportError{Err: errors.New("timeout")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/sign", bytes.NewBufferString(`{"name":"Ana","email":"ana@xpto.com.br"}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != "GATEWAY_UNAVAILABLE" {
			t.Fatalf("expected GATEWAY_UNAVAILABLE, got %v", body["code"])
		}
	})

	t.Run("portal validation refusal maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().SubmitSignature(gomock.Any(), "tok-x", gomock.Any(), "").
			Return(usecase.FlowSnapshot{}, &interfaces.ValidationError{Message: "assinatura invalida"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/sign", bytes.NewBufferString(`{"name":"Ana","email":"ana@xpto.com.br"}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProposalFlowHandler_RejectProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reason is optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().Reject(gomock.Any(), "tok-x", "").Return(usecase.FlowSnapshot{State: usecase.StateRejected}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/reject", nil)
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("terminal proposal maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().Reject(gomock.Any(), "tok-x", "caro demais").Return(usecase.FlowSnapshot{}, usecase.ErrInvalidTransition)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/reject", bytes.NewBufferString(`{"reason":"caro demais"}`))
		req.Header.Set("Content-Type", "application/json")
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("session lost after restart maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().Reject(gomock.Any(), "tok-x", "").Return(usecase.FlowSnapshot{}, usecase.ErrSessionNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/public/proposals/tok-x/reject", nil)
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProposalFlowHandler_Decisions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("trail returns the receipts with their signature urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().DecisionTrail(gomock.Any(), "tok-x").Return([]usecase.DecisionRecord{
			{
				Receipt:      entities.DecisionReceipt{ID: "rec-1", Decision: entities.DecisionAccepted, FinalValue: 940, DiscountApplied: true},
				SignatureURL: "https://archive.local/rec-1.png",
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/public/proposals/tok-x/decisions", nil)
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "rec-1" || body[0]["signature_url"] != "https://archive.local/rec-1.png" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown receipt maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalFlowUseCase(ctrl)
		h := NewProposalFlowHandler(uc)

		uc.EXPECT().DecisionRecordByID(gomock.Any(), "tok-x", "rec-9").Return(usecase.DecisionRecord{}, usecase.ErrReceiptNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/public/proposals/tok-x/decisions/rec-9", nil)
		flowRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != "RECEIPT_NOT_FOUND" {
			t.Fatalf("expected RECEIPT_NOT_FOUND, got %v", body["code"])
		}
	})
}

func TestProposalFlowHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProposalFlowUseCase(ctrl)
	h := NewProposalFlowHandler(uc)

	uc.EXPECT().GetQuote("tok-x").Return(usecase.Quote{
		BaseTotal:        1000,
		DiscountRate:     0.06,
		DiscountApplied:  true,
		DiscountAmount:   60,
		FinalTotal:       940,
		InstallmentCount: 1,
		PerInstallment:   940,
		SelectedCount:    2,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/public/proposals/tok-x/quote", nil)
	flowRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["final_total"] != 940.0 || body["discount_applied"] != true {
		t.Fatalf("unexpected quote body: %v", body)
	}
}
