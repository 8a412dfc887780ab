package repository

import (
	"context"
	"strconv"
	"time"

	"propostas_xpto/internal/domain/entities"
	"propostas_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReceiptsTableName = "decision_receipts"
	receiptsProposalIDIndex  = "proposal_id-index"
)

type decisionReceiptItem struct {
	ID                string `dynamodbav:"id"`
	ProposalID        string `dynamodbav:"proposal_id"`
	Token             string `dynamodbav:"token"`
	Decision          string `dynamodbav:"decision"`
	FinalValue        string `dynamodbav:"final_value"`
	DiscountApplied   bool   `dynamodbav:"discount_applied"`
	IsCounterProposal bool   `dynamodbav:"is_counterproposal"`
	PaymentType       string `dynamodbav:"payment_type"`
	PaymentMethod     string `dynamodbav:"payment_method"`
	Installments      int    `dynamodbav:"installments"`
	RejectionReason   string `dynamodbav:"rejection_reason,omitempty"`
	SignatureObject   string `dynamodbav:"signature_object,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// DecisionReceiptDynamoRepository persists DecisionReceipt entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)

type DecisionReceiptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDecisionReceiptRepository = (*DecisionReceiptDynamoRepository)(nil)

func NewDecisionReceiptDynamoRepository(ddb *dynamodb.Client) *DecisionReceiptDynamoRepository {
	return &DecisionReceiptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIPTS_TABLE", defaultReceiptsTableName),
	}
}

func (r *DecisionReceiptDynamoRepository) Create(ctx context.Context, receipt entities.DecisionReceipt) (entities.DecisionReceipt, error) {
	it := toDecisionReceiptItem(receipt)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DecisionReceipt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DecisionReceipt{}, err
	}
	return receipt, nil
}

func (r *DecisionReceiptDynamoRepository) GetByID(ctx context.Context, id string) (entities.DecisionReceipt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DecisionReceipt{}, err
	}
	if len(out.Item) == 0 {
		return entities.DecisionReceipt{}, nil
	}

	var it decisionReceiptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DecisionReceipt{}, err
	}
	return fromDecisionReceiptItem(it), nil
}

func (r *DecisionReceiptDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.DecisionReceipt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(receiptsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	receipts := make([]entities.DecisionReceipt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it decisionReceiptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		receipts = append(receipts, fromDecisionReceiptItem(it))
	}
	return receipts, nil
}

func toDecisionReceiptItem(r entities.DecisionReceipt) decisionReceiptItem {
	return decisionReceiptItem{
		ID:                r.ID,
		ProposalID:        r.ProposalID,
		Token:             r.Token,
		Decision:          string(r.Decision),
		FinalValue:        floatToString(r.FinalValue),
		DiscountApplied:   r.DiscountApplied,
		IsCounterProposal: r.IsCounterProposal,
		PaymentType:       r.PaymentType,
		PaymentMethod:     r.PaymentMethod,
		Installments:      r.Installments,
		RejectionReason:   r.RejectionReason,
		SignatureObject:   r.SignatureObject,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDecisionReceiptItem(it decisionReceiptItem) entities.DecisionReceipt {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	finalValue, _ := strconv.ParseFloat(it.FinalValue, 64)
	return entities.DecisionReceipt{
		ID:                it.ID,
		ProposalID:        it.ProposalID,
		Token:             it.Token,
		Decision:          entities.Decision(it.Decision),
		FinalValue:        finalValue,
		DiscountApplied:   it.DiscountApplied,
		IsCounterProposal: it.IsCounterProposal,
		PaymentType:       it.PaymentType,
		PaymentMethod:     it.PaymentMethod,
		Installments:      it.Installments,
		RejectionReason:   it.RejectionReason,
		SignatureObject:   it.SignatureObject,
		CreatedAt:         createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
