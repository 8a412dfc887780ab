package interfaces

import (
	"context"
	"errors"
	"fmt"

	"propostas_xpto/internal/domain/entities"
)

// ErrProposalNotFound is returned when the portal does not know the token.
var ErrProposalNotFound = errors.New("proposal not found")

// ValidationError is a recoverable gateway rejection: the portal refused the
// payload, the client can correct the input and retry. No state changed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "gateway validation: " + e.Message
}

// TransportError wraps network or upstream failures. The action that caused
// it is safely retryable since no state changed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SelectionItem is one line-item decision transmitted to the portal.
type SelectionItem struct {
	ServiceID string `json:"id"`
	Included  bool   `json:"included"`
	Note      string `json:"note"`
}

type SelectionSubmission struct {
	Items        []SelectionItem `json:"items"`
	Observations string          `json:"observations"`
}

// SignatureSubmission is the signed acceptance payload. Image is the encoded
// signature artifact produced at submission time.
type SignatureSubmission struct {
	Image             string          `json:"image"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Document          string          `json:"document"`
	Observations      string          `json:"observations"`
	FinalValue        float64         `json:"final_value"`
	PaymentType       string          `json:"payment_type"`
	PaymentMethod     string          `json:"payment_method"`
	Installments      int             `json:"installments"`
	DiscountApplied   bool            `json:"discount_applied"`
	IsCounterProposal bool            `json:"is_counterproposal"`
	Items             []SelectionItem `json:"items"`
}

// IProposalGateway abstracts the portal API that owns proposals. Every call
// is keyed solely by the opaque token from the entry URL; there is no
// session or credential.
//
// Errors follow a fixed taxonomy:
//   - ErrProposalNotFound: token invalid
//   - *ValidationError: payload refused, recoverable
//   - *TransportError: network/upstream failure, retryable
type IProposalGateway interface {
	FetchProposal(ctx context.Context, token string) (entities.Proposal, error)
	SubmitSelection(ctx context.Context, token string, sub SelectionSubmission) error
	SubmitSignature(ctx context.Context, token string, sub SignatureSubmission) error
	ConfirmAcceptance(ctx context.Context, token string, observations string) error
	SubmitRejection(ctx context.Context, token string, reason string) error
}
