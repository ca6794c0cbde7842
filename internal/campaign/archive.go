package campaign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archiver uploads finished campaign reports to S3 for later review.
type Archiver struct {
	client s3API
	bucket string
	logger *logging.Logger
}

// NewArchiver creates an S3 report archiver.
func NewArchiver(client *s3.Client, bucket string, logger *logging.Logger) *Archiver {
	if client == nil {
		panic("campaign: s3 client cannot be nil")
	}
	if bucket == "" {
		panic("campaign: bucket cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Archiver{
		client: client,
		bucket: bucket,
		logger: logger.Component("campaign"),
	}
}

// Archive uploads the report as JSON under campaigns/<run_id>/report.json and
// returns the object key.
func (a *Archiver) Archive(ctx context.Context, report *Report) (string, error) {
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("campaign: marshal report: %w", err)
	}

	key := path.Join("campaigns", report.RunID, "report.json")
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("campaign: upload report %s: %w", key, err)
	}

	a.logger.Info("campaign report archived", "bucket", a.bucket, "key", key)
	return key, nil
}
