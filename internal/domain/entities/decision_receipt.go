package entities

import "time"

// Decision is the terminal outcome committed by the client.

type Decision string

const (
	DecisionAccepted       Decision = "accepted"
	DecisionContraproposta Decision = "contraproposta"
	DecisionRejected       Decision = "rejected"
)

// DecisionReceipt is the local audit record written after every irreversible
// commit against the portal (signed acceptance, counter-proposal,
// confirmation, rejection).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
//
// The portal remains the source of truth for proposal state; receipts only
// exist so the rest of the system can audit what this service submitted and
// when, including where the signature image was archived.
type DecisionReceipt struct {
	ID                string    `json:"id"`
	ProposalID        string    `json:"proposal_id"`
	Token             string    `json:"token"`
	Decision          Decision  `json:"decision"`
	FinalValue        float64   `json:"final_value"`
	DiscountApplied   bool      `json:"discount_applied"`
	IsCounterProposal bool      `json:"is_counterproposal"`
	PaymentType       string    `json:"payment_type"`
	PaymentMethod     string    `json:"payment_method"`
	Installments      int       `json:"installments"`
	RejectionReason   string    `json:"rejection_reason,omitempty"`
	SignatureObject   string    `json:"signature_object,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
