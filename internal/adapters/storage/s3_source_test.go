package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

type fakeGetter struct {
	body   string
	err    error
	bucket string
	key    string
}

func (f *fakeGetter) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestParseS3URL(t *testing.T) {
	tests := []struct {
		raw        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{raw: "s3://launches/data/spacex_launch_dash.csv", wantBucket: "launches", wantKey: "data/spacex_launch_dash.csv"},
		{raw: "s3://launches/", wantErr: true},
		{raw: "s3:///key.csv", wantErr: true},
		{raw: "https://launches/key.csv", wantErr: true},
	}

	for _, tt := range tests {
		bucket, key, err := ParseS3URL(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseS3URL(%q): expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseS3URL(%q): unexpected error %v", tt.raw, err)
			continue
		}
		if bucket != tt.wantBucket || key != tt.wantKey {
			t.Errorf("ParseS3URL(%q) = (%q, %q), want (%q, %q)", tt.raw, bucket, key, tt.wantBucket, tt.wantKey)
		}
	}
}

func TestS3Source_Load(t *testing.T) {
	getter := &fakeGetter{body: "Launch Site,Payload Mass (kg),Booster Version Category,class\nA,500,v1.0,1\nB,3000,FT,0\n"}
	src := &S3Source{client: getter, bucket: "launches", key: "spacex.csv"}

	ds, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("expected 2 records, got %d", ds.Len())
	}
	if getter.bucket != "launches" || getter.key != "spacex.csv" {
		t.Errorf("unexpected object requested: %s/%s", getter.bucket, getter.key)
	}
}

func TestS3Source_LoadError(t *testing.T) {
	src := &S3Source{client: &fakeGetter{err: errors.New("NoSuchKey")}, bucket: "launches", key: "missing.csv"}

	_, err := src.Load(context.Background())

	var loadErr *domain.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.Source != "s3://launches/missing.csv" {
		t.Errorf("unexpected source %q", loadErr.Source)
	}
}
