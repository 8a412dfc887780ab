package response

import (
	"time"

	"propostas_xpto/internal/domain/entities"
	"propostas_xpto/internal/usecase"
)

type FlowItemResponse struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitValue   float64 `json:"unit_value"`
	TotalValue  float64 `json:"total_value"`
	Included    bool    `json:"included"`
	Note        string  `json:"note"`
}

type PaymentMethodResponse struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Installable bool   `json:"installable"`
}

type QuoteResponse struct {
	BaseTotal         float64 `json:"base_total"`
	DiscountRate      float64 `json:"discount_rate"`
	DiscountApplied   bool    `json:"discount_applied"`
	DiscountAmount    float64 `json:"discount_amount"`
	FinalTotal        float64 `json:"final_total"`
	InstallmentCount  int     `json:"installment_count"`
	PerInstallment    float64 `json:"per_installment"`
	SelectedCount     int     `json:"selected_count"`
	IsCounterProposal bool    `json:"is_counterproposal"`
}

// FlowStateResponse is the client view of one workflow session: proposal
// summary, current state, ledger, payment constraints and live totals.
type FlowStateResponse struct {
	SessionID       string                  `json:"session_id"`
	ProposalID      string                  `json:"proposal_id"`
	Kind            string                  `json:"kind"`
	Status          string                  `json:"status"`
	State           string                  `json:"state"`
	ClientName      string                  `json:"client_name"`
	CompanyName     string                  `json:"company_name"`
	ExpiresAt       *time.Time              `json:"expires_at"`
	Expired         bool                    `json:"expired"`
	Available       bool                    `json:"available"`
	Items           []FlowItemResponse      `json:"items"`
	AllSelected     bool                    `json:"all_selected"`
	SomeSelected    bool                    `json:"some_selected"`
	PaymentType     string                  `json:"payment_type"`
	PaymentMethod   string                  `json:"payment_method"`
	Installments    int                     `json:"installments"`
	Methods         []PaymentMethodResponse `json:"methods"`
	MaxInstallments int                     `json:"max_installments"`
	Quote           QuoteResponse           `json:"quote"`
	HasInk          bool                    `json:"has_ink"`
	SurfaceReady    bool                    `json:"surface_ready"`
}

// DecisionRecordResponse is one audit receipt in the decision trail. The
// signature URL is a temporary read link and is empty when no signature was
// archived for the decision.
type DecisionRecordResponse struct {
	ID                string    `json:"id"`
	Decision          string    `json:"decision"`
	FinalValue        float64   `json:"final_value"`
	DiscountApplied   bool      `json:"discount_applied"`
	IsCounterProposal bool      `json:"is_counterproposal"`
	PaymentType       string    `json:"payment_type"`
	PaymentMethod     string    `json:"payment_method"`
	Installments      int       `json:"installments"`
	RejectionReason   string    `json:"rejection_reason,omitempty"`
	SignatureURL      string    `json:"signature_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromDecisionRecord(r usecase.DecisionRecord) DecisionRecordResponse {
	return DecisionRecordResponse{
		ID:                r.Receipt.ID,
		Decision:          string(r.Receipt.Decision),
		FinalValue:        r.Receipt.FinalValue,
		DiscountApplied:   r.Receipt.DiscountApplied,
		IsCounterProposal: r.Receipt.IsCounterProposal,
		PaymentType:       r.Receipt.PaymentType,
		PaymentMethod:     r.Receipt.PaymentMethod,
		Installments:      r.Receipt.Installments,
		RejectionReason:   r.Receipt.RejectionReason,
		SignatureURL:      r.SignatureURL,
		CreatedAt:         r.Receipt.CreatedAt,
	}
}

func FromDecisionTrail(records []usecase.DecisionRecord) []DecisionRecordResponse {
	out := make([]DecisionRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromDecisionRecord(r))
	}
	return out
}

func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{
		BaseTotal:         q.BaseTotal,
		DiscountRate:      q.DiscountRate,
		DiscountApplied:   q.DiscountApplied,
		DiscountAmount:    q.DiscountAmount,
		FinalTotal:        q.FinalTotal,
		InstallmentCount:  q.InstallmentCount,
		PerInstallment:    q.PerInstallment,
		SelectedCount:     q.SelectedCount,
		IsCounterProposal: q.IsCounterProposal,
	}
}

func fromMethods(methods []entities.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, PaymentMethodResponse{Code: m.Code, Label: m.Label, Installable: m.Installable})
	}
	return out
}

func FromSnapshot(s usecase.FlowSnapshot) FlowStateResponse {
	items := make([]FlowItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, FlowItemResponse{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			UnitValue:   it.UnitValue,
			TotalValue:  it.TotalValue,
			Included:    it.Included,
			Note:        it.Note,
		})
	}
	return FlowStateResponse{
		SessionID:       s.SessionID,
		ProposalID:      s.ProposalID,
		Kind:            string(s.Kind),
		Status:          string(s.Status),
		State:           string(s.State),
		ClientName:      s.ClientName,
		CompanyName:     s.CompanyName,
		ExpiresAt:       s.ExpiresAt,
		Expired:         s.Expired,
		Available:       s.Available,
		Items:           items,
		AllSelected:     s.AllSelected,
		SomeSelected:    s.SomeSelected,
		PaymentType:     string(s.Payment.Type),
		PaymentMethod:   s.Payment.Method,
		Installments:    s.Payment.Installments,
		Methods:         fromMethods(s.Methods),
		MaxInstallments: s.MaxInstallments,
		Quote:           FromQuote(s.Quote),
		HasInk:          s.HasInk,
		SurfaceReady:    s.SurfaceReady,
	}
}
