package repository

import (
	"context"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/internal/usecase/interfaces"
	"imoveis_xpto/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type contractItem struct {
	PK     string `dynamodbav:"PK"`
	SK     string `dynamodbav:"SK"`
	GSI1PK string `dynamodbav:"GSI1PK"`
	GSI1SK string `dynamodbav:"GSI1SK"`

	ID                string                     `dynamodbav:"id"`
	ApartmentUnitCode string                     `dynamodbav:"apartment_unit_code"`
	TenantPhone       string                     `dynamodbav:"tenant_phone"`
	StartDate         string                     `dynamodbav:"start_date"`
	EndDate           string                     `dynamodbav:"end_date"`
	Status            string                     `dynamodbav:"status"`
	Terms             valueobjects.ContractTerms `dynamodbav:"terms"`

	LastPaymentID     string `dynamodbav:"last_payment_id,omitempty"`
	LastPaymentDate   string `dynamodbav:"last_payment_date,omitempty"`
	TerminationReason string `dynamodbav:"termination_reason,omitempty"`

	metadataItem
}

// ContractDynamoRepository persists Contract entities in the rentals
// table.
//
// Row layout:
//   - PK = SK: CONTRACT#<contractID>
//   - GSI1PK: APARTMENT#<unitCode>, GSI1SK: CONTRACT#<startDate>
//     (per-apartment history, newest first)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	gsi1Name  string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client, tableName, gsi1Name string) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		gsi1Name:  gsi1Name,
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c *entities.Contract) (*entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return nil, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, pkg.NewBusinessRuleViolation("contract " + c.ID + " already exists")
		}
		return nil, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, contractID string) (*entities.Contract, error) {
	key := stringKey(entities.ContractPartitionKey(contractID))
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"PK": key, "SK": key},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) ListByApartment(ctx context.Context, unitCode string) ([]*entities.Contract, error) {
	return r.queryByApartment(ctx, unitCode, nil)
}

func (r *ContractDynamoRepository) FindActiveByApartment(ctx context.Context, unitCode string) (*entities.Contract, error) {
	filter := expression.Name("status").Equal(expression.Value(string(entities.ContractStatusActive)))
	contracts, err := r.queryByApartment(ctx, unitCode, &filter)
	if err != nil {
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, nil
	}
	return contracts[0], nil
}

func (r *ContractDynamoRepository) queryByApartment(ctx context.Context, unitCode string, filter *expression.ConditionBuilder) ([]*entities.Contract, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(entities.ApartmentPartitionKey(unitCode))).
		And(expression.Key("GSI1SK").BeginsWith("CONTRACT#"))
	builder := expression.NewBuilder().WithKeyCondition(keyCond)
	if filter != nil {
		builder = builder.WithFilter(*filter)
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, err
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.gsi1Name),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	contracts := make([]*entities.Contract, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		contracts = append(contracts, fromContractItem(it))
	}
	return contracts, nil
}

func (r *ContractDynamoRepository) Save(ctx context.Context, c *entities.Contract) (*entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return nil, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, c.Metadata.Version-1); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, staleVersionError("contract", c.ID)
		}
		return nil, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) Delete(ctx context.Context, contractID string) error {
	key := stringKey(entities.ContractPartitionKey(contractID))
	return deleteByKey(ctx, r.ddb, r.tableName, map[string]types.AttributeValue{"PK": key, "SK": key}, "contract", contractID)
}

func toContractItem(c *entities.Contract) contractItem {
	it := contractItem{
		PK:                c.PK(),
		SK:                c.SK(),
		GSI1PK:            c.GSI1PK(),
		GSI1SK:            c.GSI1SK(),
		ID:                c.ID,
		ApartmentUnitCode: c.ApartmentUnitCode,
		TenantPhone:       c.TenantPhone,
		StartDate:         c.StartDate.UTC().Format(time.RFC3339),
		EndDate:           c.EndDate.UTC().Format(time.RFC3339),
		Status:            string(c.Status),
		Terms:             c.Terms,
		LastPaymentID:     c.LastPaymentID,
		TerminationReason: c.TerminationReason,
		metadataItem:      toMetadataItem(c.Metadata),
	}
	if c.LastPaymentDate != nil {
		it.LastPaymentDate = c.LastPaymentDate.UTC().Format(time.RFC3339)
	}
	return it
}

func fromContractItem(it contractItem) *entities.Contract {
	startDate, _ := time.Parse(time.RFC3339, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339, it.EndDate)
	c := &entities.Contract{
		ID:                it.ID,
		ApartmentUnitCode: it.ApartmentUnitCode,
		TenantPhone:       it.TenantPhone,
		StartDate:         startDate,
		EndDate:           endDate,
		Status:            entities.ContractStatus(it.Status),
		Terms:             it.Terms,
		LastPaymentID:     it.LastPaymentID,
		TerminationReason: it.TerminationReason,
		Metadata:          fromMetadataItem(it.metadataItem),
	}
	if it.LastPaymentDate != "" {
		if dt, err := time.Parse(time.RFC3339, it.LastPaymentDate); err == nil {
			c.LastPaymentDate = &dt
		}
	}
	return c
}
