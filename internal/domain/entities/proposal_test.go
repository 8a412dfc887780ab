package entities

import (
	"testing"
	"time"
)

func TestProposalLineItem_ResolvedUnitValue(t *testing.T) {
	t.Run("custom value wins", func(t *testing.T) {
		it := ProposalLineItem{CustomValue: 120, UnitValue: 100, CatalogValue: 90}
		if got := it.ResolvedUnitValue(); got != 120 {
			t.Fatalf("expected 120, got %v", got)
		}
	})

	t.Run("unit value before catalog", func(t *testing.T) {
		it := ProposalLineItem{UnitValue: 100, CatalogValue: 90}
		if got := it.ResolvedUnitValue(); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})

	t.Run("catalog fallback", func(t *testing.T) {
		it := ProposalLineItem{CatalogValue: 90}
		if got := it.ResolvedUnitValue(); got != 90 {
			t.Fatalf("expected 90, got %v", got)
		}
	})
}

func TestProposalLineItem_ResolvedTotal(t *testing.T) {
	t.Run("portal total wins over computed", func(t *testing.T) {
		it := ProposalLineItem{Quantity: 2, UnitValue: 100, TotalValue: 150}
		if got := it.ResolvedTotal(); got != 150 {
			t.Fatalf("expected 150, got %v", got)
		}
	})

	t.Run("quantity times unit", func(t *testing.T) {
		it := ProposalLineItem{Quantity: 3, UnitValue: 100}
		if got := it.ResolvedTotal(); got != 300 {
			t.Fatalf("expected 300, got %v", got)
		}
	})

	t.Run("zero quantity counts as one", func(t *testing.T) {
		it := ProposalLineItem{UnitValue: 100}
		if got := it.ResolvedTotal(); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})
}

func TestProposal_EffectiveExpiry(t *testing.T) {
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	valid := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("end date takes precedence", func(t *testing.T) {
		p := Proposal{EndDate: &end, ValidUntil: &valid}
		if got := p.EffectiveExpiry(); got == nil || !got.Equal(end) {
			t.Fatalf("expected end date, got %v", got)
		}
	})

	t.Run("valid until fallback", func(t *testing.T) {
		p := Proposal{ValidUntil: &valid}
		if got := p.EffectiveExpiry(); got == nil || !got.Equal(valid) {
			t.Fatalf("expected valid until, got %v", got)
		}
	})

	t.Run("no expiry", func(t *testing.T) {
		p := Proposal{}
		if got := p.EffectiveExpiry(); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
		if p.IsExpired(time.Now()) {
			t.Fatal("proposal without expiry must never expire")
		}
	})
}

func TestProposal_IsExpired(t *testing.T) {
	exp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Proposal{EndDate: &exp}

	if p.IsExpired(exp) {
		t.Fatal("not expired at the exact instant")
	}
	if !p.IsExpired(exp.Add(time.Second)) {
		t.Fatal("expired one second after")
	}
}

func TestProposal_InstallmentLimit(t *testing.T) {
	tests := []struct {
		name string
		max  int
		want int
	}{
		{"absent defaults to 12", 0, DefaultInstallments},
		{"below range defaults to 12", -3, DefaultInstallments},
		{"above range defaults to 12", 24, DefaultInstallments},
		{"in range kept", 6, 6},
		{"upper bound kept", 18, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Proposal{MaxInstallments: tt.max}
			if got := p.InstallmentLimit(); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestProposal_FindItem(t *testing.T) {
	p := Proposal{Items: []ProposalLineItem{{ServiceID: "svc-1"}, {ServiceID: "svc-2"}}}

	if _, ok := p.FindItem(" svc-2 "); !ok {
		t.Fatal("expected to find svc-2 with surrounding spaces trimmed")
	}
	if _, ok := p.FindItem("svc-9"); ok {
		t.Fatal("expected svc-9 to be unknown")
	}
}
