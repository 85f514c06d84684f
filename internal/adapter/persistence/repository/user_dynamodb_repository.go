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

type userItem struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`

	Phone          string `dynamodbav:"phone"`
	PhoneFormatted string `dynamodbav:"phone_formatted,omitempty"`
	PhoneRegion    string `dynamodbav:"phone_region,omitempty"`
	Name           string `dynamodbav:"name"`
	DocumentType   string `dynamodbav:"document_type"`
	DocumentValue  string `dynamodbav:"document_value,omitempty"`
	DocumentFmt    string `dynamodbav:"document_formatted,omitempty"`
	Email          string `dynamodbav:"email,omitempty"`
	Status         string `dynamodbav:"status"`

	metadataItem
}

// UserDynamoRepository persists User entities in the rentals table.
//
// Row layout:
//   - PK: USER#<phoneE164>
//   - SK: PROFILE

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u *entities.User) (*entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return nil, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, pkg.NewBusinessRuleViolation("user " + u.Phone.E164 + " already exists")
		}
		return nil, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByPhone(ctx context.Context, phoneE164 string) (*entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": stringKey(entities.UserPartitionKey(phoneE164)),
			"SK": stringKey("PROFILE"),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]*entities.User, error) {
	filter := expression.And(
		expression.BeginsWith(expression.Name("PK"), "USER#"),
		expression.Name("SK").Equal(expression.Value("PROFILE")),
	)
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, err
	}

	var users []*entities.User
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
			var it userItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return users, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *UserDynamoRepository) Save(ctx context.Context, u *entities.User) (*entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return nil, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, u.Metadata.Version-1); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, staleVersionError("user", u.Phone.E164)
		}
		return nil, err
	}
	return u, nil
}

func (r *UserDynamoRepository) Delete(ctx context.Context, phoneE164 string) error {
	key := map[string]types.AttributeValue{
		"PK": stringKey(entities.UserPartitionKey(phoneE164)),
		"SK": stringKey("PROFILE"),
	}
	return deleteByKey(ctx, r.ddb, r.tableName, key, "user", phoneE164)
}

func toUserItem(u *entities.User) userItem {
	return userItem{
		PK:             u.PK(),
		SK:             u.SK(),
		Phone:          u.Phone.E164,
		PhoneFormatted: u.Phone.Formatted,
		PhoneRegion:    u.Phone.Region,
		Name:           u.Name,
		DocumentType:   string(u.Document.Type),
		DocumentValue:  u.Document.Value,
		DocumentFmt:    u.Document.Formatted,
		Email:          u.Email,
		Status:         string(u.Status),
		metadataItem:   toMetadataItem(u.Metadata),
	}
}

func fromUserItem(it userItem) *entities.User {
	return &entities.User{
		Phone: valueobjects.PhoneNumber{
			E164:      it.Phone,
			Formatted: it.PhoneFormatted,
			Region:    it.PhoneRegion,
		},
		Name: it.Name,
		Document: valueobjects.Document{
			Type:      valueobjects.DocumentType(it.DocumentType),
			Value:     it.DocumentValue,
			Formatted: it.DocumentFmt,
		},
		Email:    it.Email,
		Status:   entities.UserStatus(it.Status),
		Metadata: fromMetadataItem(it.metadataItem),
	}
}
