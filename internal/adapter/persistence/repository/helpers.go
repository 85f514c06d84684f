package repository

import (
	"context"
	"errors"
	"time"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// metadataItem is the flattened EntityMetadata stored on every row.
type metadataItem struct {
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	CreatedBy string `dynamodbav:"created_by,omitempty"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
	Version   int    `dynamodbav:"version"`
}

func toMetadataItem(md valueobjects.EntityMetadata) metadataItem {
	return metadataItem{
		CreatedAt: md.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: md.UpdatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy: md.CreatedBy,
		UpdatedBy: md.UpdatedBy,
		Version:   md.Version,
	}
}

func fromMetadataItem(it metadataItem) valueobjects.EntityMetadata {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return valueobjects.EntityMetadata{
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		CreatedBy: it.CreatedBy,
		UpdatedBy: it.UpdatedBy,
		Version:   it.Version,
	}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// putNew writes a fresh row and refuses to overwrite an existing one.
func putNew(ctx context.Context, ddb *dynamodb.Client, table string, av map[string]types.AttributeValue) error {
	cond := expression.And(
		expression.AttributeNotExists(expression.Name("PK")),
		expression.AttributeNotExists(expression.Name("SK")),
	)
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(table),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return err
}

// putVersioned replaces a row only when the stored version still equals
// the version the caller read before mutating. expectedVersion is the
// pre-mutation version (the item being written carries expected+1), so
// a concurrent writer makes the condition fail instead of losing the
// update silently.
func putVersioned(ctx context.Context, ddb *dynamodb.Client, table string, av map[string]types.AttributeValue, expectedVersion int) error {
	cond := expression.Or(
		expression.Name("version").Equal(expression.Value(expectedVersion)),
		expression.AttributeNotExists(expression.Name("version")),
	)
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(table),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return err
}

func staleVersionError(entity, id string) error {
	return pkg.NewBusinessRuleViolation("stale version: " + entity + " " + id + " was modified concurrently")
}

// deleteByKey removes one row and reports EntityNotFound when nothing
// was there.
func deleteByKey(ctx context.Context, ddb *dynamodb.Client, table string, key map[string]types.AttributeValue, entity, id string) error {
	out, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(table),
		Key:          key,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return err
	}
	if len(out.Attributes) == 0 {
		return pkg.NewEntityNotFound(entity, id)
	}
	return nil
}

func stringKey(value string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: value}
}
