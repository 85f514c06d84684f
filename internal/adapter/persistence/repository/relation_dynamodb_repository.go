package repository

import (
	"context"

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

type relationItem struct {
	PK     string `dynamodbav:"PK"`
	SK     string `dynamodbav:"SK"`
	GSI1PK string `dynamodbav:"GSI1PK"`
	GSI1SK string `dynamodbav:"GSI1SK"`

	ApartmentUnitCode string `dynamodbav:"apartment_unit_code"`
	UserPhone         string `dynamodbav:"user_phone"`
	Role              string `dynamodbav:"role"`
	RelationshipType  string `dynamodbav:"relationship_type,omitempty"`
	IsActive          bool   `dynamodbav:"is_active"`

	metadataItem
}

// RelationDynamoRepository persists user-apartment relations in the
// rentals table.
//
// Row layout:
//   - PK: APARTMENT#<unitCode>, SK: USER#<phoneE164>#<role>
//   - GSI1PK: USER#<phoneE164>, GSI1SK: APARTMENT#<unitCode>#<role>
//
// Apartment-side listings query the base table; user-side listings
// query GSI1.

type RelationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	gsi1Name  string
}

var _ interfaces.IRelationRepository = (*RelationDynamoRepository)(nil)

func NewRelationDynamoRepository(ddb *dynamodb.Client, tableName, gsi1Name string) *RelationDynamoRepository {
	return &RelationDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		gsi1Name:  gsi1Name,
	}
}

func relationSortKey(phoneE164 string, role valueobjects.RelationRole) string {
	return "USER#" + phoneE164 + "#" + string(role)
}

func (r *RelationDynamoRepository) Create(ctx context.Context, rel *entities.UserApartmentRelation) (*entities.UserApartmentRelation, error) {
	av, err := attributevalue.MarshalMap(toRelationItem(rel))
	if err != nil {
		return nil, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, pkg.NewBusinessRuleViolation(
				"relation " + rel.UserPhone + "@" + rel.ApartmentUnitCode + " already exists")
		}
		return nil, err
	}
	return rel, nil
}

func (r *RelationDynamoRepository) Get(ctx context.Context, unitCode, phoneE164 string, role valueobjects.RelationRole) (*entities.UserApartmentRelation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": stringKey(entities.ApartmentPartitionKey(unitCode)),
			"SK": stringKey(relationSortKey(phoneE164, role)),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it relationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromRelationItem(it), nil
}

func (r *RelationDynamoRepository) ListByApartment(ctx context.Context, unitCode string) ([]*entities.UserApartmentRelation, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(entities.ApartmentPartitionKey(unitCode))).
		And(expression.Key("SK").BeginsWith("USER#"))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, err
	}
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
}

func (r *RelationDynamoRepository) ListByApartmentRole(ctx context.Context, unitCode string, role valueobjects.RelationRole) ([]*entities.UserApartmentRelation, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(entities.ApartmentPartitionKey(unitCode))).
		And(expression.Key("SK").BeginsWith("USER#"))
	filter := expression.Name("role").Equal(expression.Value(string(role)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).WithFilter(filter).Build()
	if err != nil {
		return nil, err
	}
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
}

func (r *RelationDynamoRepository) ListByUser(ctx context.Context, phoneE164 string) ([]*entities.UserApartmentRelation, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(entities.UserPartitionKey(phoneE164))).
		And(expression.Key("GSI1SK").BeginsWith("APARTMENT#"))
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
	})
}

func (r *RelationDynamoRepository) Save(ctx context.Context, rel *entities.UserApartmentRelation) (*entities.UserApartmentRelation, error) {
	av, err := attributevalue.MarshalMap(toRelationItem(rel))
	if err != nil {
		return nil, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, rel.Metadata.Version-1); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, staleVersionError("relation", rel.UserPhone+"@"+rel.ApartmentUnitCode)
		}
		return nil, err
	}
	return rel, nil
}

func (r *RelationDynamoRepository) Delete(ctx context.Context, unitCode, phoneE164 string, role valueobjects.RelationRole) error {
	key := map[string]types.AttributeValue{
		"PK": stringKey(entities.ApartmentPartitionKey(unitCode)),
		"SK": stringKey(relationSortKey(phoneE164, role)),
	}
	return deleteByKey(ctx, r.ddb, r.tableName, key, "relation", phoneE164+"@"+unitCode)
}

func (r *RelationDynamoRepository) query(ctx context.Context, input *dynamodb.QueryInput) ([]*entities.UserApartmentRelation, error) {
	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}
	relations := make([]*entities.UserApartmentRelation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it relationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		relations = append(relations, fromRelationItem(it))
	}
	return relations, nil
}

func toRelationItem(rel *entities.UserApartmentRelation) relationItem {
	return relationItem{
		PK:                rel.PK(),
		SK:                rel.SK(),
		GSI1PK:            rel.GSI1PK(),
		GSI1SK:            rel.GSI1SK(),
		ApartmentUnitCode: rel.ApartmentUnitCode,
		UserPhone:         rel.UserPhone,
		Role:              string(rel.Role),
		RelationshipType:  rel.RelationshipType,
		IsActive:          rel.IsActive,
		metadataItem:      toMetadataItem(rel.Metadata),
	}
}

func fromRelationItem(it relationItem) *entities.UserApartmentRelation {
	return &entities.UserApartmentRelation{
		ApartmentUnitCode: it.ApartmentUnitCode,
		UserPhone:         it.UserPhone,
		Role:              valueobjects.RelationRole(it.Role),
		RelationshipType:  it.RelationshipType,
		IsActive:          it.IsActive,
		Metadata:          fromMetadataItem(it.metadataItem),
	}
}
