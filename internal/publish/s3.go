// Copyright 2025 The bio2parquet Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package publish

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mathysgrapotte/bio2parquet/internal/converr"
)

// S3Publisher uploads a parquet file to an S3 object, using the ambient AWS
// credential chain.
type S3Publisher struct {
	bucket   string
	key      string
	uploader *manager.Uploader
}

var _ Publisher = (*S3Publisher)(nil)

// ParseS3URI splits an s3://bucket/key URI.
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3:// URI: %q", uri)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 URI must be s3://bucket/key, got %q", uri)
	}
	return bucket, key, nil
}

// NewS3Publisher builds an uploader for the given s3://bucket/key URI.
func NewS3Publisher(ctx context.Context, uri string) (*S3Publisher, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, converr.Publish("invalid S3 destination", err)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, converr.Publish("load AWS configuration", err)
	}
	client := s3.NewFromConfig(cfg)

	return &S3Publisher{
		bucket:   bucket,
		key:      key,
		uploader: manager.NewUploader(client),
	}, nil
}

// Publish uploads localPath to the configured bucket and key.
func (p *S3Publisher) Publish(ctx context.Context, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return converr.Publish(fmt.Sprintf("open %s", localPath), err)
	}
	defer func() { _ = file.Close() }()

	slog.Info("Uploading parquet to S3",
		slog.String("bucket", p.bucket),
		slog.String("key", p.key))

	_, err = p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.key),
		Body:        file,
		ContentType: aws.String("application/vnd.apache.parquet"),
		Metadata: map[string]string{
			"writer": "bio2parquet",
		},
	})
	if err != nil {
		return converr.Publish(fmt.Sprintf("upload to s3://%s/%s", p.bucket, p.key), err)
	}
	return nil
}
