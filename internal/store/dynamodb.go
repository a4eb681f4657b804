package store

import (
	"context"

	"github.com/ATenderholt/rainbow-filedata/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// PutItemAPI is the part of *dynamodb.Client used by DynamoStore.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type DynamoStore struct {
	client PutItemAPI
	table  string
}

func NewDynamoStore(client PutItemAPI, table string) *DynamoStore {
	return &DynamoStore{
		client: client,
		table:  table,
	}
}

// Put replaces any existing item with the same FileID. No condition
// expression is sent, so the last write wins.
func (s DynamoStore) Put(ctx context.Context, entry domain.FileEntry) error {
	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		err := MarshalError{entry: entry, base: err}
		logger.Error(err)
		return err
	}

	logger.Debugf("Putting item %s into table %s", entry.ID, s.table)

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		err := PutError{table: s.table, id: entry.ID, base: err}
		logger.Error(err)
		return err
	}

	return nil
}
