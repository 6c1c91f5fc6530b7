// Package publish uploads rendered frames to S3-compatible object storage.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/charmbracelet/log"
	"github.com/taigrr/lumen/pkg/render"
)

// UploadTimeout bounds a single upload.
const UploadTimeout = 30 * time.Second

// ErrNoBucket is returned when uploading is requested without a bucket.
var ErrNoBucket = errors.New("no S3 bucket configured")

// Config holds the storage settings, usually read from the environment.
type Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // empty for AWS itself
	Region    string
	Bucket    string
	Prefix    string
}

// ConfigFromEnv reads LUMEN_S3_* variables. Without an access key the
// SDK's default credential chain is used.
func ConfigFromEnv() Config {
	cfg := Config{
		AccessKey: os.Getenv("LUMEN_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("LUMEN_S3_SECRET_KEY"),
		Endpoint:  os.Getenv("LUMEN_S3_ENDPOINT"),
		Region:    os.Getenv("LUMEN_S3_REGION"),
		Bucket:    os.Getenv("LUMEN_S3_BUCKET"),
		Prefix:    os.Getenv("LUMEN_S3_PREFIX"),
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	return cfg
}

// Uploader puts objects into one bucket under a key prefix.
type Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string

	// Logger reports finished uploads. Nil stays silent.
	Logger *log.Logger
}

// New creates an uploader with its own S3 session.
func New(cfg Config) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	s3Config := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKey != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Endpoint)
		s3Config.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("create S3 session: %w", err)
	}
	return NewWithClient(s3.New(sess), cfg), nil
}

// NewWithClient creates an uploader around an existing client.
func NewWithClient(client s3iface.S3API, cfg Config) *Uploader {
	return &Uploader{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}
}

// Key returns the object key for name.
func (u *Uploader) Key(name string) string {
	if u.prefix == "" {
		return name
	}
	return path.Join(u.prefix, name)
}

// Upload stores data under the prefixed name and returns the key.
func (u *Uploader) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.Key(name)
	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if u.Logger != nil {
		u.Logger.Info("uploaded", "bucket", u.bucket, "key", key, "bytes", size)
	}
	return key, nil
}

// UploadPNG encodes img as PNG, upscaled by scale, and uploads it.
func (u *Uploader) UploadPNG(ctx context.Context, name string, img image.Image, scale int) (string, error) {
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img, scale); err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	return u.Upload(ctx, name, buf.Bytes(), "image/png")
}
