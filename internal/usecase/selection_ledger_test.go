package usecase

import (
	"testing"

	"propostas_xpto/internal/domain/entities"
)

func TestSelectionLedger(t *testing.T) {
	t.Run("seeds every item included", func(t *testing.T) {
		l := NewSelectionLedger(fullProposal())
		if !l.AllSelected() || l.SelectedCount() != 2 {
			t.Fatalf("expected both items included, got count=%d", l.SelectedCount())
		}
	})

	t.Run("carries existing client notes", func(t *testing.T) {
		p := fullProposal()
		p.Items[0].ClientNotes = "meio periodo"
		l := NewSelectionLedger(p)
		if got := l.Note("svc-1"); got != "meio periodo" {
			t.Fatalf("expected carried note, got %q", got)
		}
	})

	t.Run("toggle flips and reports unknown ids", func(t *testing.T) {
		l := NewSelectionLedger(fullProposal())
		if !l.Toggle("svc-1") {
			t.Fatal("expected toggle of known id to succeed")
		}
		if l.IsIncluded("svc-1") {
			t.Fatal("expected svc-1 excluded after toggle")
		}
		if l.Toggle("svc-9") {
			t.Fatal("expected toggle of unknown id to fail")
		}
	})

	t.Run("tri-state selection queries", func(t *testing.T) {
		l := NewSelectionLedger(fullProposal())
		if l.SomeSelected() {
			t.Fatal("all selected is not the partial state")
		}

		l.Toggle("svc-1")
		if !l.SomeSelected() || l.AllSelected() {
			t.Fatal("expected partial state after excluding one item")
		}

		l.SetAll(false)
		if l.SomeSelected() || l.SelectedCount() != 0 {
			t.Fatal("expected nothing selected after SetAll(false)")
		}

		l.SetAll(true)
		if !l.AllSelected() {
			t.Fatal("expected everything selected after SetAll(true)")
		}
	})

	t.Run("notes on unknown ids are rejected", func(t *testing.T) {
		l := NewSelectionLedger(fullProposal())
		if l.SetNote("svc-9", "x") {
			t.Fatal("expected note on unknown id to fail")
		}
		if !l.SetNote(" svc-2 ", "urgente") {
			t.Fatal("expected trimmed id to be accepted")
		}
		if got := l.Note("svc-2"); got != "urgente" {
			t.Fatalf("expected note kept, got %q", got)
		}
	})

	t.Run("items materialize in proposal order", func(t *testing.T) {
		l := NewSelectionLedger(fullProposal())
		l.Toggle("svc-2")
		l.SetNote("svc-1", "prioridade")

		items := l.Items()
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].ServiceID != "svc-1" || !items[0].Included || items[0].Note != "prioridade" {
			t.Fatalf("unexpected first item: %+v", items[0])
		}
		if items[1].ServiceID != "svc-2" || items[1].Included {
			t.Fatalf("unexpected second item: %+v", items[1])
		}
	})

	t.Run("empty ledger counts as all selected", func(t *testing.T) {
		l := NewSelectionLedger(entities.Proposal{})
		if !l.AllSelected() || l.SomeSelected() || l.Len() != 0 {
			t.Fatal("empty ledger must report all selected and no partial state")
		}
	})
}
