package entities

import (
	"strings"
	"time"
)

// ProposalStatus represents the lifecycle of a commercial proposal as owned
// by the portal API.
//
// Domain notes:
//   - The portal is the source of truth for proposal state. This service
//     never mutates a status locally: the whole Proposal is replaced by a
//     fresh fetch after every committing call.
//   - "contraproposta" is the partial acceptance recorded when the client
//     excludes line items before signing.

type ProposalStatus string

const (
	ProposalStatusRascunho       ProposalStatus = "draft"
	ProposalStatusEnviada        ProposalStatus = "sent"
	ProposalStatusAssinada       ProposalStatus = "signed"
	ProposalStatusAceita         ProposalStatus = "accepted"
	ProposalStatusRejeitada      ProposalStatus = "rejected"
	ProposalStatusExpirada       ProposalStatus = "expired"
	ProposalStatusConvertida     ProposalStatus = "converted"
	ProposalStatusContraproposta ProposalStatus = "contraproposta"
)

// ProposalKind distinguishes the simple view/sign flow from the full flow
// that also supports line-item selection and a confirmation step.
type ProposalKind string

const (
	ProposalKindSimple ProposalKind = "simple"
	ProposalKindFull   ProposalKind = "full"
)

const (
	MinInstallments     = 1
	MaxInstallments     = 18
	DefaultInstallments = 12

	// Fixed discount for immediate payment of the full item set.
	ImmediateDiscountRate = 0.06
)

// ProposalLineItem is one priced service offered within a proposal.
type ProposalLineItem struct {
	ServiceID         string  `json:"service_id"`
	ServiceName       string  `json:"service_name"`
	Quantity          int     `json:"quantity"`
	CustomValue       float64 `json:"custom_value"`
	UnitValue         float64 `json:"unit_value"`
	CatalogValue      float64 `json:"catalog_value"`
	TotalValue        float64 `json:"total_value"`
	ClientNotes       string  `json:"client_notes"`
	RecruitmentPct    float64 `json:"recruitment_pct"`
	HasRecruitmentPct bool    `json:"has_recruitment_pct"`
}

// ResolvedUnitValue applies the unit value priority: custom value when
// present, then the per-proposal unit value, then the catalog value.
func (i ProposalLineItem) ResolvedUnitValue() float64 {
	if i.CustomValue > 0 {
		return i.CustomValue
	}
	if i.UnitValue > 0 {
		return i.UnitValue
	}
	return i.CatalogValue
}

// ResolvedTotal prefers the portal-supplied total and falls back to
// quantity x resolved unit value.
func (i ProposalLineItem) ResolvedTotal() float64 {
	if i.TotalValue > 0 {
		return i.TotalValue
	}
	qty := i.Quantity
	if qty <= 0 {
		qty = 1
	}
	return float64(qty) * i.ResolvedUnitValue()
}

// Proposal is one commercial offer sent to one client, addressed by a single
// opaque token with no authenticated session.
type Proposal struct {
	ID              string             `json:"id"`
	Token           string             `json:"token"`
	Kind            ProposalKind       `json:"kind"`
	Status          ProposalStatus     `json:"status"`
	ClientName      string             `json:"client_name"`
	CompanyName     string             `json:"company_name"`
	TotalValue      float64            `json:"total_value"`
	EndDate         *time.Time         `json:"end_date"`
	ValidUntil      *time.Time         `json:"valid_until"`
	MaxInstallments int                `json:"max_installments"`
	Items           []ProposalLineItem `json:"items"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// EffectiveExpiry resolves the expiration instant. The explicit end date
// takes precedence over the "valid until" date; nil means no expiry.
func (p Proposal) EffectiveExpiry() *time.Time {
	if p.EndDate != nil {
		return p.EndDate
	}
	return p.ValidUntil
}

// IsExpired reports whether the proposal's effective expiry elapsed at the
// given instant. An elapsed date blocks every forward transition regardless
// of status.
func (p Proposal) IsExpired(now time.Time) bool {
	exp := p.EffectiveExpiry()
	if exp == nil {
		return false
	}
	return now.After(*exp)
}

// InstallmentLimit clamps the proposal's maximum installment count to the
// [1,18] range, defaulting to 12 when absent or invalid.
func (p Proposal) InstallmentLimit() int {
	n := p.MaxInstallments
	if n < MinInstallments || n > MaxInstallments {
		return DefaultInstallments
	}
	return n
}

func (p Proposal) FindItem(serviceID string) (ProposalLineItem, bool) {
	serviceID = strings.TrimSpace(serviceID)
	for _, it := range p.Items {
		if it.ServiceID == serviceID {
			return it, true
		}
	}
	return ProposalLineItem{}, false
}
