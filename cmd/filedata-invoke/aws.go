package main

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// local invoke servers do not check signatures
var credentials aws.CredentialsProviderFunc = func(ctx context.Context) (aws.Credentials, error) {
	return aws.Credentials{AccessKeyID: "ABC", SecretAccessKey: "EFG", CanExpire: false}, nil
}

func lambdaEndpointResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               endpoint,
			HostnameImmutable: true,
		}, nil
	}
}

func NewLambdaClient(ctx context.Context, opts options) (*lambda.Client, error) {
	if opts.endpoint != "" {
		cfg := aws.Config{
			Region:                      opts.region,
			Credentials:                 credentials,
			EndpointResolverWithOptions: lambdaEndpointResolver(opts.endpoint),
		}

		return lambda.NewFromConfig(cfg), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(opts.region))
	if err != nil {
		return nil, err
	}

	return lambda.NewFromConfig(cfg), nil
}
