package usecase

import (
	"testing"

	"propostas_xpto/internal/domain/entities"
)

func fullProposal() entities.Proposal {
	return entities.Proposal{
		ID:   "prop-1",
		Kind: entities.ProposalKindFull,
		Items: []entities.ProposalLineItem{
			{ServiceID: "svc-1", ServiceName: "Recrutamento", Quantity: 1, UnitValue: 600},
			{ServiceID: "svc-2", ServiceName: "Treinamento", Quantity: 1, UnitValue: 400},
		},
	}
}

func TestBuildQuote(t *testing.T) {
	immediate := entities.PaymentSelection{Type: entities.PaymentTypeImmediate, Method: "pix", Installments: 1}

	t.Run("full selection immediate gets 6 percent off", func(t *testing.T) {
		p := fullProposal()
		q := BuildQuote(p, NewSelectionLedger(p), immediate)

		if q.BaseTotal != 1000 {
			t.Fatalf("expected base 1000, got %v", q.BaseTotal)
		}
		if !q.DiscountApplied || q.DiscountAmount != 60 {
			t.Fatalf("expected 60 discount applied, got applied=%t amount=%v", q.DiscountApplied, q.DiscountAmount)
		}
		if q.FinalTotal != 940 {
			t.Fatalf("expected final 940, got %v", q.FinalTotal)
		}
		if q.IsCounterProposal {
			t.Fatal("full selection is not a counter-proposal")
		}
		if q.InstallmentCount != 1 || q.PerInstallment != 940 {
			t.Fatalf("immediate payment must quote a single parcel, got count=%d per=%v", q.InstallmentCount, q.PerInstallment)
		}
	})

	t.Run("excluding an item forfeits the discount", func(t *testing.T) {
		p := fullProposal()
		ledger := NewSelectionLedger(p)
		ledger.Toggle("svc-2")

		q := BuildQuote(p, ledger, immediate)
		if q.DiscountApplied {
			t.Fatal("discount must not apply to a partial selection")
		}
		if q.BaseTotal != 600 || q.FinalTotal != 600 {
			t.Fatalf("expected 600/600, got base=%v final=%v", q.BaseTotal, q.FinalTotal)
		}
		if !q.IsCounterProposal {
			t.Fatal("partial selection is a counter-proposal")
		}
	})

	t.Run("deferred payment forfeits the discount and splits parcels", func(t *testing.T) {
		p := fullProposal()
		sel := entities.PaymentSelection{Type: entities.PaymentTypeDeferred, Method: "boleto", Installments: 4}

		q := BuildQuote(p, NewSelectionLedger(p), sel)
		if q.DiscountApplied {
			t.Fatal("discount applies only to immediate payment")
		}
		if q.FinalTotal != 1000 {
			t.Fatalf("expected final 1000, got %v", q.FinalTotal)
		}
		if q.InstallmentCount != 4 || q.PerInstallment != 250 {
			t.Fatalf("expected 4 x 250, got %d x %v", q.InstallmentCount, q.PerInstallment)
		}
	})

	t.Run("single deferred installment quotes the full value", func(t *testing.T) {
		p := fullProposal()
		sel := entities.PaymentSelection{Type: entities.PaymentTypeDeferred, Method: "boleto", Installments: 1}

		q := BuildQuote(p, NewSelectionLedger(p), sel)
		if q.InstallmentCount != 1 || q.PerInstallment != q.FinalTotal {
			t.Fatalf("expected one parcel equal to final, got %d x %v (final %v)", q.InstallmentCount, q.PerInstallment, q.FinalTotal)
		}
	})

	t.Run("per installment rounds to cents", func(t *testing.T) {
		p := fullProposal()
		ledger := NewSelectionLedger(p)
		sel := entities.PaymentSelection{Type: entities.PaymentTypeDeferred, Method: "cartao", Installments: 3}

		q := BuildQuote(p, ledger, sel)
		if q.PerInstallment != 333.33 {
			t.Fatalf("expected 333.33, got %v", q.PerInstallment)
		}
	})

	t.Run("no items means no discount and zero totals", func(t *testing.T) {
		p := entities.Proposal{ID: "prop-2", Kind: entities.ProposalKindSimple}
		q := BuildQuote(p, NewSelectionLedger(p), immediate)

		if q.DiscountApplied {
			t.Fatal("discount requires at least one item")
		}
		if q.BaseTotal != 0 || q.FinalTotal != 0 {
			t.Fatalf("expected zero totals, got base=%v final=%v", q.BaseTotal, q.FinalTotal)
		}
	})

	t.Run("nil ledger yields the zero quote", func(t *testing.T) {
		q := BuildQuote(fullProposal(), nil, immediate)
		if q.BaseTotal != 0 || q.DiscountApplied {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("discount recomputes after switching payment back", func(t *testing.T) {
		p := fullProposal()
		ledger := NewSelectionLedger(p)
		deferred := entities.PaymentSelection{Type: entities.PaymentTypeDeferred, Method: "boleto", Installments: 2}

		if BuildQuote(p, ledger, deferred).DiscountApplied {
			t.Fatal("deferred must not discount")
		}
		if !BuildQuote(p, ledger, immediate).DiscountApplied {
			t.Fatal("switching back to immediate must rediscover the discount")
		}
	})
}
