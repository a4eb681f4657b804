package main

import (
	"context"

	"github.com/ATenderholt/rainbow-filedata/internal/service"
	"github.com/ATenderholt/rainbow-filedata/internal/settings"
	"github.com/ATenderholt/rainbow-filedata/internal/store"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func dynamoEndpointResolver(cfg *settings.Config) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if service != dynamodb.ServiceID || cfg.DynamoEndpoint == "" {
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}

		return aws.Endpoint{
			URL:               cfg.DynamoEndpoint,
			HostnameImmutable: true,
			SigningRegion:     region,
		}, nil
	}
}

func NewAwsConfig(cfg *settings.Config) (aws.Config, error) {
	return config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region),
		config.WithEndpointResolverWithOptions(dynamoEndpointResolver(cfg)),
	)
}

func NewDynamoClient(config aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(config)
}

func NewEntryStore(cfg *settings.Config, client *dynamodb.Client) service.EntryStore {
	if cfg.UseMemory {
		logger.Info("Keeping file entries in memory")
		return store.NewMemoryStore()
	}

	logger.Infof("Writing file entries to table %s", cfg.Table)
	return store.NewDynamoStore(client, cfg.Table)
}
