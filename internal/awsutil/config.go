// Package awsutil provides utilities for loading AWS configuration.
package awsutil

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
)

// Load builds the shared AWS configuration for the given region. When
// AWS_ENDPOINT_URL is set (e.g. http://localstack:4566 for local
// development) every service client is pointed at that endpoint; the
// endpoint is also returned so callers can toggle per-service options such
// as S3 path-style addressing.
func Load(ctx context.Context, region string) (aws.Config, string, error) {
	opts := []func(*awsCfg.LoadOptions) error{awsCfg.WithRegion(region)}

	endpoint := os.Getenv("AWS_ENDPOINT_URL")
	if endpoint != "" {
		opts = append(opts, awsCfg.WithEndpointResolverWithOptions(staticResolver(endpoint)))
	}

	cfg, err := awsCfg.LoadDefaultConfig(ctx, opts...)
	return cfg, endpoint, err
}

// staticResolver routes every service to one fixed endpoint.
func staticResolver(url string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...any) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               url,
			HostnameImmutable: true,
			PartitionID:       "aws",
		}, nil
	}
}
