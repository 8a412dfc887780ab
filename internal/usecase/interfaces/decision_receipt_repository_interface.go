package interfaces

import (
	"context"

	"propostas_xpto/internal/domain/entities"
)

// IDecisionReceiptRepository abstracts DynamoDB persistence for the audit
// receipts written after irreversible commits.
type IDecisionReceiptRepository interface {
	Create(ctx context.Context, r entities.DecisionReceipt) (entities.DecisionReceipt, error)
	GetByID(ctx context.Context, id string) (entities.DecisionReceipt, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.DecisionReceipt, error)
}
