// Where: internal/backend/backend.go
// What: Remote-state backend identity and preparation.
// Why: The provisioning engine needs its state bucket and lock table before the first run.
package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/stackcraft/stackc/internal/provider"
)

// Identity names the remote-state resources for one stack.
type Identity struct {
	Bucket    string
	Key       string
	LockTable string
	Region    string
}

// S3API is the subset of S3 operations backend preparation needs.
type S3API interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	CreateBucket(ctx context.Context, bucket, region string) error
}

// DynamoDBAPI is the subset of DynamoDB operations backend preparation needs.
type DynamoDBAPI interface {
	TableExists(ctx context.Context, table string) (bool, error)
	CreateLockTable(ctx context.Context, table string) error
}

// DeriveIdentity computes the remote-state resource names for a stack.
// Only AWS has a remote-state layout defined.
func DeriveIdentity(stackName string, p provider.Provider, region, accountID string) (Identity, error) {
	switch p {
	case provider.AWS:
		name := strings.ToLower(strings.TrimSpace(stackName))
		if name == "" {
			return Identity{}, fmt.Errorf("stack name is required to derive state identity")
		}
		return Identity{
			Bucket:    fmt.Sprintf("%s-%s-state", name, accountID),
			Key:       name + ".tfstate",
			LockTable: name + "-state-lock",
			Region:    region,
		}, nil
	case provider.GCP:
		return Identity{}, fmt.Errorf("remote state for gcp is not supported yet")
	}
	return Identity{}, fmt.Errorf("unsupported provider: %s", p)
}

// StateFile returns the state storage location recorded in the output
// artifact.
func (id Identity) StateFile() string {
	return fmt.Sprintf("s3://%s/%s", id.Bucket, id.Key)
}

// Ensure creates the state bucket and lock table when missing. Existing
// resources are left untouched.
func Ensure(ctx context.Context, s3 S3API, dynamo DynamoDBAPI, id Identity) error {
	exists, err := s3.BucketExists(ctx, id.Bucket)
	if err != nil {
		return fmt.Errorf("check state bucket: %w", err)
	}
	if !exists {
		if err := s3.CreateBucket(ctx, id.Bucket, id.Region); err != nil {
			return fmt.Errorf("create state bucket: %w", err)
		}
	}

	exists, err = dynamo.TableExists(ctx, id.LockTable)
	if err != nil {
		return fmt.Errorf("check lock table: %w", err)
	}
	if !exists {
		if err := dynamo.CreateLockTable(ctx, id.LockTable); err != nil {
			return fmt.Errorf("create lock table: %w", err)
		}
	}
	return nil
}
