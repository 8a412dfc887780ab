package usecase

import (
	"strings"

	"propostas_xpto/internal/domain/entities"
	"propostas_xpto/internal/usecase/interfaces"
)

// SelectionLedger is the transient client-side record of which line items
// are currently included and annotated. It is seeded fresh on every proposal
// load, mutated locally (never calling the portal by itself) and it — not
// the proposal — is authoritative for what gets submitted.
//
// The ledger is not safe for concurrent use; the owning flow session
// serializes access.

type SelectionLedger struct {
	order    []string
	included map[string]bool
	notes    map[string]string
}

// NewSelectionLedger seeds a ledger from a proposal: every item included by
// default, carrying forward any client notes already on the line item.
func NewSelectionLedger(p entities.Proposal) *SelectionLedger {
	l := &SelectionLedger{
		order:    make([]string, 0, len(p.Items)),
		included: make(map[string]bool, len(p.Items)),
		notes:    make(map[string]string, len(p.Items)),
	}
	for _, it := range p.Items {
		l.order = append(l.order, it.ServiceID)
		l.included[it.ServiceID] = true
		if it.ClientNotes != "" {
			l.notes[it.ServiceID] = it.ClientNotes
		}
	}
	return l
}

// Toggle flips one item's inclusion. Unknown ids are reported, not created.
func (l *SelectionLedger) Toggle(serviceID string) bool {
	serviceID = strings.TrimSpace(serviceID)
	if _, ok := l.included[serviceID]; !ok {
		return false
	}
	l.included[serviceID] = !l.included[serviceID]
	return true
}

// SetAll selects or deselects every item in one step.
func (l *SelectionLedger) SetAll(included bool) {
	for id := range l.included {
		l.included[id] = included
	}
}

func (l *SelectionLedger) SetNote(serviceID, note string) bool {
	serviceID = strings.TrimSpace(serviceID)
	if _, ok := l.included[serviceID]; !ok {
		return false
	}
	l.notes[serviceID] = note
	return true
}

func (l *SelectionLedger) IsIncluded(serviceID string) bool {
	return l.included[serviceID]
}

func (l *SelectionLedger) Note(serviceID string) string {
	return l.notes[serviceID]
}

func (l *SelectionLedger) SelectedCount() int {
	n := 0
	for _, id := range l.order {
		if l.included[id] {
			n++
		}
	}
	return n
}

// AllSelected reports whether every item is included. An empty ledger has
// nothing deselected, so it reports true.
func (l *SelectionLedger) AllSelected() bool {
	return l.SelectedCount() == len(l.order)
}

// SomeSelected reports the tri-state middle: at least one item included but
// not all of them. Drives the indeterminate "select all" control.
func (l *SelectionLedger) SomeSelected() bool {
	n := l.SelectedCount()
	return n > 0 && n < len(l.order)
}

func (l *SelectionLedger) Len() int {
	return len(l.order)
}

// Items materializes the ledger in proposal order for submission.
func (l *SelectionLedger) Items() []interfaces.SelectionItem {
	out := make([]interfaces.SelectionItem, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, interfaces.SelectionItem{
			ServiceID: id,
			Included:  l.included[id],
			Note:      l.notes[id],
		})
	}
	return out
}
