package repository

import (
	"context"
	"strconv"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/usecase/interfaces"
	"imoveis_xpto/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentItem struct {
	PK     string `dynamodbav:"PK"`
	SK     string `dynamodbav:"SK"`
	GSI1PK string `dynamodbav:"GSI1PK"`
	GSI1SK string `dynamodbav:"GSI1SK"`

	ID                string  `dynamodbav:"id"`
	ApartmentUnitCode string  `dynamodbav:"apartment_unit_code"`
	PayerPhone        string  `dynamodbav:"payer_phone"`
	Amount            float64 `dynamodbav:"amount"`
	DueDate           string  `dynamodbav:"due_date"`
	ContractID        string  `dynamodbav:"contract_id"`
	Status            string  `dynamodbav:"status"`
	Type              string  `dynamodbav:"type"`

	ProofDocumentKey string `dynamodbav:"proof_document_key,omitempty"`
	PaymentDate      string `dynamodbav:"payment_date,omitempty"`
	ValidatedBy      string `dynamodbav:"validated_by,omitempty"`
	ValidatedAt      string `dynamodbav:"validated_at,omitempty"`
	RejectionReason  string `dynamodbav:"rejection_reason,omitempty"`
	Description      string `dynamodbav:"description,omitempty"`

	CreatedAtMillis int64 `dynamodbav:"created_at_millis"`

	metadataItem
}

// PaymentDynamoRepository persists Payment entities in the rentals
// table.
//
// Row layout:
//   - PK: APARTMENT#<unitCode>
//   - SK: PAYMENT#<createdAtMillis>#<paymentID>  (chronological)
//   - GSI1PK: CONTRACT#<contractID>, GSI1SK: PAYMENT#<dueDate>
//
// due_date is stored in plain RFC 3339 (second precision) so string
// comparison in filter expressions matches time order.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	gsi1Name  string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName, gsi1Name string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		gsi1Name:  gsi1Name,
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p *entities.Payment) (*entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return nil, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, pkg.NewBusinessRuleViolation("payment " + p.ID + " already exists")
		}
		return nil, err
	}
	return p, nil
}

// GetByID queries the apartment partition and filters on the payment
// id: the sort key embeds the creation instant, which the caller does
// not know.
func (r *PaymentDynamoRepository) GetByID(ctx context.Context, unitCode, paymentID string) (*entities.Payment, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(entities.ApartmentPartitionKey(unitCode))).
		And(expression.Key("SK").BeginsWith(entities.PaymentSortKeyStart))
	filter := expression.Name("id").Equal(expression.Value(paymentID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).WithFilter(filter).Build()
	if err != nil {
		return nil, err
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return nil, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByApartment(ctx context.Context, unitCode string) ([]*entities.Payment, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(entities.ApartmentPartitionKey(unitCode))).
		And(expression.Key("SK").BeginsWith(entities.PaymentSortKeyStart))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, err
	}
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	})
}

// ListByApartmentBetween ranges over the creation-ordered sort key.
// Epoch millis keep a fixed digit count for the foreseeable future, so
// the string range matches the numeric one.
func (r *PaymentDynamoRepository) ListByApartmentBetween(ctx context.Context, unitCode string, from, to time.Time) ([]*entities.Payment, error) {
	lower, upper := paymentCreationRange(from, to)
	keyCond := expression.Key("PK").Equal(expression.Value(entities.ApartmentPartitionKey(unitCode))).
		And(expression.Key("SK").Between(expression.Value(lower), expression.Value(upper)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, err
	}
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	})
}

func (r *PaymentDynamoRepository) ListByContract(ctx context.Context, contractID string) ([]*entities.Payment, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(entities.ContractPartitionKey(contractID))).
		And(expression.Key("GSI1SK").BeginsWith(entities.PaymentSortKeyStart))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, err
	}
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.gsi1Name),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	})
}

// ListPendingDueBefore scans for pending payments past the cutoff; the
// overdue sweep runs it once a day, so a scan is acceptable.
func (r *PaymentDynamoRepository) ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*entities.Payment, error) {
	filter := expression.And(
		expression.BeginsWith(expression.Name("SK"), entities.PaymentSortKeyStart),
		expression.Name("status").Equal(expression.Value(string(entities.PaymentStatusPending))),
		expression.Name("due_date").LessThan(expression.Value(cutoff.UTC().Format(time.RFC3339))),
	)
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, err
	}

	var payments []*entities.Payment
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			payments = append(payments, fromPaymentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return payments, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *PaymentDynamoRepository) Save(ctx context.Context, p *entities.Payment) (*entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return nil, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, p.Metadata.Version-1); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, staleVersionError("payment", p.ID)
		}
		return nil, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) query(ctx context.Context, input *dynamodb.QueryInput) ([]*entities.Payment, error) {
	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}
	payments := make([]*entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func timeToMillisString(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// paymentCreationRange builds inclusive sort-key bounds for payments
// created inside [from, to]. "#~" sorts after "#<paymentID>" for every
// id the service generates, so payments created at the upper instant
// are still included.
func paymentCreationRange(from, to time.Time) (lower, upper string) {
	lower = entities.PaymentSortKeyStart + timeToMillisString(from)
	upper = entities.PaymentSortKeyStart + timeToMillisString(to) + "#~"
	return lower, upper
}

func toPaymentItem(p *entities.Payment) paymentItem {
	it := paymentItem{
		PK:                p.PK(),
		SK:                p.SK(),
		GSI1PK:            p.GSI1PK(),
		GSI1SK:            p.GSI1SK(),
		ID:                p.ID,
		ApartmentUnitCode: p.ApartmentUnitCode,
		PayerPhone:        p.PayerPhone,
		Amount:            p.Amount,
		DueDate:           p.DueDate.UTC().Format(time.RFC3339),
		ContractID:        p.ContractID,
		Status:            string(p.Status),
		Type:              string(p.Type),
		ProofDocumentKey:  p.ProofDocumentKey,
		ValidatedBy:       p.ValidatedBy,
		RejectionReason:   p.RejectionReason,
		Description:       p.Description,
		CreatedAtMillis:   p.CreatedAtMillis,
		metadataItem:      toMetadataItem(p.Metadata),
	}
	if p.PaymentDate != nil {
		it.PaymentDate = p.PaymentDate.UTC().Format(time.RFC3339)
	}
	if p.ValidatedAt != nil {
		it.ValidatedAt = p.ValidatedAt.UTC().Format(time.RFC3339)
	}
	return it
}

func fromPaymentItem(it paymentItem) *entities.Payment {
	dueDate, _ := time.Parse(time.RFC3339, it.DueDate)
	p := &entities.Payment{
		ID:                it.ID,
		ApartmentUnitCode: it.ApartmentUnitCode,
		PayerPhone:        it.PayerPhone,
		Amount:            it.Amount,
		DueDate:           dueDate,
		ContractID:        it.ContractID,
		Status:            entities.PaymentStatus(it.Status),
		Type:              entities.PaymentType(it.Type),
		ProofDocumentKey:  it.ProofDocumentKey,
		ValidatedBy:       it.ValidatedBy,
		RejectionReason:   it.RejectionReason,
		Description:       it.Description,
		CreatedAtMillis:   it.CreatedAtMillis,
		Metadata:          fromMetadataItem(it.metadataItem),
	}
	if it.PaymentDate != "" {
		if dt, err := time.Parse(time.RFC3339, it.PaymentDate); err == nil {
			p.PaymentDate = &dt
		}
	}
	if it.ValidatedAt != "" {
		if dt, err := time.Parse(time.RFC3339, it.ValidatedAt); err == nil {
			p.ValidatedAt = &dt
		}
	}
	return p
}
