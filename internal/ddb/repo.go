// Package ddb provides a simple repository for interacting with DynamoDB for file metadata records.
package ddb

import (
	"context"

	"github.com/filealert/upload-notifier/internal/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// PutItemAPI is the slice of the DynamoDB client the repo needs.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Repo wraps a DynamoDB client and table name for metadata operations.
type Repo struct {
	DB    PutItemAPI
	Table string
}

// PutMetadata upserts a metadata row keyed by FileName. A row with the same
// file name is overwritten unconditionally (last write wins).
func (r *Repo) PutMetadata(ctx context.Context, m models.FileMetadata) error {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return err
	}
	_, err = r.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &r.Table,
		Item:      item,
	})
	return err
}
