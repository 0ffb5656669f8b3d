// Where: internal/backend/aws_factory.go
// What: AWS client factory for backend preparation.
// Why: Encapsulate SDK configuration, including static credential overrides.
package backend

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ClientFactory builds the cloud clients backend preparation runs against.
type ClientFactory interface {
	S3(ctx context.Context, region string) (S3API, error)
	DynamoDB(ctx context.Context, region string) (DynamoDBAPI, error)
}

// NewAWSClientFactory returns a factory backed by the default AWS
// credential chain, with STACKC_ACCESS_KEY/STACKC_SECRET_KEY as an
// explicit override for isolated environments.
func NewAWSClientFactory() ClientFactory {
	return awsClientFactory{}
}

type awsClientFactory struct{}

func (awsClientFactory) S3(ctx context.Context, region string) (S3API, error) {
	cfg, err := loadAWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return awsS3Client{client: s3.NewFromConfig(cfg)}, nil
}

func (awsClientFactory) DynamoDB(ctx context.Context, region string) (DynamoDBAPI, error) {
	cfg, err := loadAWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return awsDynamoClient{client: dynamodb.NewFromConfig(cfg)}, nil
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	accessKey := os.Getenv("STACKC_ACCESS_KEY")
	secretKey := os.Getenv("STACKC_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}
