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

type apartmentItem struct {
	PK     string `dynamodbav:"PK"`
	SK     string `dynamodbav:"SK"`
	GSI1PK string `dynamodbav:"GSI1PK"`

	UnitCode    string                 `dynamodbav:"unit_code"`
	Label       string                 `dynamodbav:"label"`
	Address     string                 `dynamodbav:"address,omitempty"`
	BaseRent    float64                `dynamodbav:"base_rent"`
	CleaningFee float64                `dynamodbav:"cleaning_fee"`
	Status      string                 `dynamodbav:"status"`
	RentalType  string                 `dynamodbav:"rental_type"`
	Amenities   valueobjects.Amenities `dynamodbav:"amenities"`
	ContactInfo string                 `dynamodbav:"contact_info,omitempty"`
	AirbnbURL   string                 `dynamodbav:"airbnb_url,omitempty"`

	IsAvailable   bool     `dynamodbav:"is_available"`
	AvailableFrom string   `dynamodbav:"available_from,omitempty"`
	Images        []string `dynamodbav:"images,omitempty"`

	metadataItem
}

// ApartmentDynamoRepository persists Apartment entities in the rentals
// table.
//
// Row layout:
//   - PK: APARTMENT#<unitCode>
//   - SK: APARTMENT
//   - GSI1PK: STATUS#<status>  (status listings)

type ApartmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	gsi1Name  string
}

var _ interfaces.IApartmentRepository = (*ApartmentDynamoRepository)(nil)

func NewApartmentDynamoRepository(ddb *dynamodb.Client, tableName, gsi1Name string) *ApartmentDynamoRepository {
	return &ApartmentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		gsi1Name:  gsi1Name,
	}
}

func (r *ApartmentDynamoRepository) Create(ctx context.Context, a *entities.Apartment) (*entities.Apartment, error) {
	av, err := attributevalue.MarshalMap(toApartmentItem(a))
	if err != nil {
		return nil, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, pkg.NewBusinessRuleViolation("apartment " + a.UnitCode + " already exists")
		}
		return nil, err
	}
	return a, nil
}

func (r *ApartmentDynamoRepository) GetByUnitCode(ctx context.Context, unitCode string) (*entities.Apartment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": stringKey(entities.ApartmentPartitionKey(unitCode)),
			"SK": stringKey("APARTMENT"),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it apartmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromApartmentItem(it), nil
}

func (r *ApartmentDynamoRepository) List(ctx context.Context) ([]*entities.Apartment, error) {
	filter := expression.Name("SK").Equal(expression.Value("APARTMENT"))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, err
	}

	var apartments []*entities.Apartment
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
			var it apartmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			apartments = append(apartments, fromApartmentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return apartments, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ApartmentDynamoRepository) ListByStatus(ctx context.Context, status entities.ApartmentStatus) ([]*entities.Apartment, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value("STATUS#" + string(status)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, err
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.gsi1Name),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, err
	}

	apartments := make([]*entities.Apartment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it apartmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		apartments = append(apartments, fromApartmentItem(it))
	}
	return apartments, nil
}

func (r *ApartmentDynamoRepository) Save(ctx context.Context, a *entities.Apartment) (*entities.Apartment, error) {
	av, err := attributevalue.MarshalMap(toApartmentItem(a))
	if err != nil {
		return nil, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, a.Metadata.Version-1); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, staleVersionError("apartment", a.UnitCode)
		}
		return nil, err
	}
	return a, nil
}

func (r *ApartmentDynamoRepository) Delete(ctx context.Context, unitCode string) error {
	key := map[string]types.AttributeValue{
		"PK": stringKey(entities.ApartmentPartitionKey(unitCode)),
		"SK": stringKey("APARTMENT"),
	}
	return deleteByKey(ctx, r.ddb, r.tableName, key, "apartment", unitCode)
}

func toApartmentItem(a *entities.Apartment) apartmentItem {
	it := apartmentItem{
		PK:           a.PK(),
		SK:           a.SK(),
		GSI1PK:       a.GSI1PK(),
		UnitCode:     a.UnitCode,
		Label:        a.Label,
		Address:      a.Address,
		BaseRent:     a.BaseRent,
		CleaningFee:  a.CleaningFee,
		Status:       string(a.Status),
		RentalType:   string(a.RentalType),
		Amenities:    a.Amenities,
		ContactInfo:  a.ContactInfo,
		AirbnbURL:    a.AirbnbURL,
		IsAvailable:  a.IsAvailable,
		Images:       a.Images,
		metadataItem: toMetadataItem(a.Metadata),
	}
	if a.AvailableFrom != nil {
		it.AvailableFrom = a.AvailableFrom.UTC().Format(time.RFC3339)
	}
	return it
}

func fromApartmentItem(it apartmentItem) *entities.Apartment {
	a := &entities.Apartment{
		UnitCode:    it.UnitCode,
		Label:       it.Label,
		Address:     it.Address,
		BaseRent:    it.BaseRent,
		CleaningFee: it.CleaningFee,
		Status:      entities.ApartmentStatus(it.Status),
		RentalType:  entities.RentalType(it.RentalType),
		Amenities:   it.Amenities,
		ContactInfo: it.ContactInfo,
		AirbnbURL:   it.AirbnbURL,
		IsAvailable: it.IsAvailable,
		Images:      it.Images,
		Metadata:    fromMetadataItem(it.metadataItem),
	}
	if it.AvailableFrom != "" {
		if dt, err := time.Parse(time.RFC3339, it.AvailableFrom); err == nil {
			a.AvailableFrom = &dt
		}
	}
	return a
}
