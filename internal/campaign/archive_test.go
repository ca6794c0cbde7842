package campaign

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

type fakeS3 struct {
	bucket string
	key    string
	body   []byte
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.bucket = aws.ToString(params.Bucket)
	f.key = aws.ToString(params.Key)
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestArchiveUploadsReport(t *testing.T) {
	fake := &fakeS3{}
	archiver := &Archiver{client: fake, bucket: "outreach-reports", logger: logging.Default()}

	state := NewState()
	report := BuildReport("run-1", state,
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC),
	)

	key, err := archiver.Archive(context.Background(), report)
	require.NoError(t, err)

	assert.Equal(t, "campaigns/run-1/report.json", key)
	assert.Equal(t, "outreach-reports", fake.bucket)
	assert.Equal(t, key, fake.key)

	var decoded Report
	require.NoError(t, json.Unmarshal(fake.body, &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
}
