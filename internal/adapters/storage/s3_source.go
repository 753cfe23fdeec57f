package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/emiliopalmerini/launchdash/internal/adapters/csvfile"
	"github.com/emiliopalmerini/launchdash/internal/domain"
)

// objectGetter is the subset of *s3.Client used by S3Source.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the launch CSV from an S3-compatible bucket.
type S3Source struct {
	client objectGetter
	bucket string
	key    string
}

// ParseS3URL splits "s3://bucket/key" into bucket and key.
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parse s3 url: %w", err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("s3 url %q: scheme must be s3", raw)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("s3 url %q: expected s3://bucket/key", raw)
	}
	return u.Host, key, nil
}

// NewS3Source creates an S3 source for rawURL. If endpoint is non-empty,
// path-style addressing is enabled (for MinIO and similar).
func NewS3Source(ctx context.Context, rawURL, region, endpoint string) (*S3Source, error) {
	bucket, key, err := ParseS3URL(rawURL)
	if err != nil {
		return nil, err
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return &S3Source{
		client: s3.NewFromConfig(cfg, s3opts...),
		bucket: bucket,
		key:    key,
	}, nil
}

// Load downloads the object and parses it as launch CSV.
func (s *S3Source) Load(ctx context.Context) (*domain.Dataset, error) {
	name := "s3://" + s.bucket + "/" + s.key

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, &domain.LoadError{Source: name, Err: fmt.Errorf("s3 get object: %w", err)}
	}
	defer func() { _ = out.Body.Close() }()

	return csvfile.Read(out.Body, name)
}
