package usecase

import (
	"math"

	"propostas_xpto/internal/domain/entities"
)

// Quote is the financial outcome of the current selection and payment
// choice. It is recomputed on every read — discount eligibility in
// particular is never cached, so switching payment type back and forth
// always reflects the current choice.
type Quote struct {
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

// BuildQuote derives the financial terms of acceptance.
//
// Rules:
//   - base total sums the resolved total of each included item
//   - the 6% discount applies only to immediate payment of the FULL item
//     set; excluding any item forfeits it
//   - per-installment value only diverges from the final total for deferred
//     payment with more than one installment
//   - a strict subset of the original items marks the submission as a
//     counter-proposal
func BuildQuote(p entities.Proposal, ledger *SelectionLedger, sel entities.PaymentSelection) Quote {
	q := Quote{
		DiscountRate:     entities.ImmediateDiscountRate,
		InstallmentCount: 1,
	}
	if ledger == nil {
		return q
	}

	for _, it := range p.Items {
		if ledger.IsIncluded(it.ServiceID) {
			q.BaseTotal += it.ResolvedTotal()
		}
	}
	q.SelectedCount = ledger.SelectedCount()
	q.IsCounterProposal = q.SelectedCount < len(p.Items)

	q.DiscountApplied = sel.Type == entities.PaymentTypeImmediate && ledger.AllSelected() && len(p.Items) > 0
	if q.DiscountApplied {
		q.DiscountAmount = round2(q.BaseTotal * q.DiscountRate)
	}
	q.FinalTotal = round2(q.BaseTotal - q.DiscountAmount)

	q.PerInstallment = q.FinalTotal
	if sel.Type == entities.PaymentTypeDeferred && sel.Installments > 1 {
		q.InstallmentCount = sel.Installments
		q.PerInstallment = round2(q.FinalTotal / float64(sel.Installments))
	}
	return q
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
