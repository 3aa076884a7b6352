package publish

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vattr/internal/errors"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// s3API is the subset of *s3.Client used by S3Store.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes documents to an S3 bucket under a key prefix.
type S3Store struct {
	client s3API
	bucket string
	prefix string
	logger *slog.Logger
}

// NewS3Store creates an S3Store. client is usually an *s3.Client from
// NewS3Client.
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix, logger: slog.Default()}
}

// NewS3Client creates an S3 client for region. A non-empty endpoint
// switches to path-style addressing for S3-compatible servers.
func NewS3Client(region, endpoint string) *s3.Client {
	if region == "" {
		region = DefaultRegion
	}
	opts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// envCredentials reads static credentials from the standard AWS
// environment variables, falling back to anonymous access.
func envCredentials(ctx context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.AnonymousCredentials{}.Retrieve(ctx)
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}

// Key returns the object key for name.
func (s *S3Store) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// Put uploads data as s3://bucket/prefix/name.
func (s *S3Store) Put(ctx context.Context, name string, data []byte) (string, error) {
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}
	key := s.Key(clean)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType(clean)),
	})
	if err != nil {
		return "", errors.New("E081").WithDetailf("s3://%s/%s", s.bucket, key).Wrap(err)
	}

	loc := "s3://" + s.bucket + "/" + key
	if s.logger != nil {
		s.logger.Debug("published", "location", loc, "bytes", len(data))
	}
	return loc, nil
}
