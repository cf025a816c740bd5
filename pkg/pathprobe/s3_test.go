package pathprobe_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ordutils/pkg/pathprobe"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func (m *MockS3Client) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListObjectsV2Output), args.Error(1)
}

func newTestProber(t *testing.T, client *MockS3Client) *pathprobe.S3Prober {
	t.Helper()
	p, err := pathprobe.NewS3Prober(context.Background(), pathprobe.S3Config{}, pathprobe.WithS3Client(client))
	require.NoError(t, err)
	return p
}

func headFor(bucket, key string) any {
	return mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return aws.ToString(in.Bucket) == bucket && aws.ToString(in.Key) == key
	})
}

func listFor(bucket, prefix string) any {
	return mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return aws.ToString(in.Bucket) == bucket && aws.ToString(in.Prefix) == prefix
	})
}

func TestNewS3Prober(t *testing.T) {
	t.Parallel()

	t.Run("requires region without injected client", func(t *testing.T) {
		_, err := pathprobe.NewS3Prober(context.Background(), pathprobe.S3Config{})
		assert.ErrorIs(t, err, pathprobe.ErrInvalidConfig)
	})

	t.Run("accepts injected client", func(t *testing.T) {
		p, err := pathprobe.NewS3Prober(context.Background(), pathprobe.S3Config{}, pathprobe.WithS3Client(&MockS3Client{}))
		require.NoError(t, err)
		assert.NotNil(t, p)
	})
}

func TestParseS3URI(t *testing.T) {
	t.Parallel()

	bucket, key, err := pathprobe.ParseS3URI("s3://reports/2024/q1.csv")
	require.NoError(t, err)
	assert.Equal(t, "reports", bucket)
	assert.Equal(t, "2024/q1.csv", key)

	bucket, key, err = pathprobe.ParseS3URI("s3://reports")
	require.NoError(t, err)
	assert.Equal(t, "reports", bucket)
	assert.Empty(t, key)

	for _, uri := range []string{"/local/path", "s3://", "s3:///key", "s3://bucket/../etc", "gs://bucket/key"} {
		_, _, err := pathprobe.ParseS3URI(uri)
		assert.ErrorIs(t, err, pathprobe.ErrInvalidPath, uri)
	}
}

func TestS3Prober_Probe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("object is a file", func(t *testing.T) {
		client := &MockS3Client{}
		client.On("HeadObject", ctx, headFor("data", "a/b.csv"), mock.Anything).
			Return(&s3.HeadObjectOutput{}, nil)

		kind, err := newTestProber(t, client).Probe(ctx, "s3://data/a/b.csv")
		require.NoError(t, err)
		assert.Equal(t, pathprobe.KindFile, kind)
		client.AssertExpectations(t)
	})

	t.Run("prefix with objects is a directory", func(t *testing.T) {
		client := &MockS3Client{}
		client.On("HeadObject", ctx, headFor("data", "a"), mock.Anything).
			Return(nil, &types.NotFound{})
		client.On("ListObjectsV2", ctx, listFor("data", "a/"), mock.Anything).
			Return(&s3.ListObjectsV2Output{Contents: []types.Object{{Key: aws.String("a/b.csv")}}}, nil)

		kind, err := newTestProber(t, client).Probe(ctx, "s3://data/a")
		require.NoError(t, err)
		assert.Equal(t, pathprobe.KindDir, kind)
		client.AssertExpectations(t)
	})

	t.Run("trailing slash skips head", func(t *testing.T) {
		client := &MockS3Client{}
		client.On("ListObjectsV2", ctx, listFor("data", "a/"), mock.Anything).
			Return(&s3.ListObjectsV2Output{CommonPrefixes: []types.CommonPrefix{{Prefix: aws.String("a/b/")}}}, nil)

		kind, err := newTestProber(t, client).Probe(ctx, "s3://data/a/")
		require.NoError(t, err)
		assert.Equal(t, pathprobe.KindDir, kind)
		client.AssertNotCalled(t, "HeadObject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing key and empty prefix is none", func(t *testing.T) {
		client := &MockS3Client{}
		client.On("HeadObject", ctx, headFor("data", "missing"), mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "NotFound"})
		client.On("ListObjectsV2", ctx, listFor("data", "missing/"), mock.Anything).
			Return(&s3.ListObjectsV2Output{}, nil)

		kind, err := newTestProber(t, client).Probe(ctx, "s3://data/missing")
		require.NoError(t, err)
		assert.Equal(t, pathprobe.KindNone, kind)
	})

	t.Run("existing bucket root is a directory", func(t *testing.T) {
		client := &MockS3Client{}
		client.On("ListObjectsV2", ctx, listFor("data", ""), mock.Anything).
			Return(&s3.ListObjectsV2Output{}, nil)

		kind, err := newTestProber(t, client).Probe(ctx, "s3://data")
		require.NoError(t, err)
		assert.Equal(t, pathprobe.KindDir, kind)
	})

	t.Run("missing bucket is none", func(t *testing.T) {
		client := &MockS3Client{}
		client.On("ListObjectsV2", ctx, listFor("ghost", ""), mock.Anything).
			Return(nil, &types.NoSuchBucket{})

		kind, err := newTestProber(t, client).Probe(ctx, "s3://ghost")
		require.NoError(t, err)
		assert.Equal(t, pathprobe.KindNone, kind)
	})

	t.Run("access denied is classified", func(t *testing.T) {
		client := &MockS3Client{}
		client.On("HeadObject", ctx, headFor("data", "secret"), mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied"})

		_, err := newTestProber(t, client).Probe(ctx, "s3://data/secret")
		assert.ErrorIs(t, err, pathprobe.ErrAccessDenied)
	})

	t.Run("timeout is classified", func(t *testing.T) {
		client := &MockS3Client{}
		client.On("ListObjectsV2", ctx, listFor("data", "slow/"), mock.Anything).
			Return(nil, context.DeadlineExceeded)

		_, err := newTestProber(t, client).Probe(ctx, "s3://data/slow/")
		assert.ErrorIs(t, err, pathprobe.ErrOperationTimeout)
	})

	t.Run("invalid uri", func(t *testing.T) {
		_, err := newTestProber(t, &MockS3Client{}).Probe(ctx, "/not/s3")
		assert.ErrorIs(t, err, pathprobe.ErrInvalidPath)
	})
}
