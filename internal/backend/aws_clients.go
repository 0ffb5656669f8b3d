// Where: internal/backend/aws_clients.go
// What: AWS SDK adapters for S3 and DynamoDB.
// Why: Map backend preparation onto SDK calls behind small interfaces.
package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type awsS3Client struct {
	client *s3.Client
}

func (c awsS3Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	if c.client == nil {
		return false, fmt.Errorf("s3 client is nil")
	}
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c awsS3Client) CreateBucket(ctx context.Context, bucket, region string) error {
	if c.client == nil {
		return fmt.Errorf("s3 client is nil")
	}
	input := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	// us-east-1 rejects an explicit location constraint.
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(region),
		}
	}
	_, err := c.client.CreateBucket(ctx, input)
	return err
}

type awsDynamoClient struct {
	client *dynamodb.Client
}

func (c awsDynamoClient) TableExists(ctx context.Context, table string) (bool, error) {
	if c.client == nil {
		return false, fmt.Errorf("dynamodb client is nil")
	}
	_, err := c.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})
	if err != nil {
		var notFound *dynamotypes.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c awsDynamoClient) CreateLockTable(ctx context.Context, table string) error {
	if c.client == nil {
		return fmt.Errorf("dynamodb client is nil")
	}
	_, err := c.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		KeySchema: []dynamotypes.KeySchemaElement{
			{AttributeName: aws.String("LockID"), KeyType: dynamotypes.KeyTypeHash},
		},
		AttributeDefinitions: []dynamotypes.AttributeDefinition{
			{AttributeName: aws.String("LockID"), AttributeType: dynamotypes.ScalarAttributeTypeS},
		},
		BillingMode: dynamotypes.BillingModePayPerRequest,
	})
	return err
}
