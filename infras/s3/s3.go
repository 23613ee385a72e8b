package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	otelAttrSize      = "size"
)

// ErrObjectNotFound is returned by Get when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// S3 stores documents in the configured bucket. Keys are slash separated paths.
type S3 interface {
	Put(ctx context.Context, key, contentType string, body []byte) (url string, err error)
	Get(ctx context.Context, key string) (body []byte, err error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type s3Impl struct {
	client *s3.Client
	bucket string
	domain string
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		client: client,
		bucket: config.External.S3.BucketName,
		domain: strings.TrimSuffix(config.External.S3.PublicDomain, "/"),
		otel:   otel,
	}
}

func (svc *s3Impl) Put(ctx context.Context, key, contentType string, body []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
		otelAttrSize:      len(body),
	})

	reader := bytes.NewReader(body)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to put object to S3")

		return constant.Empty, fmt.Errorf("failed to put object to S3: %w", err)
	}

	return svc.URL(key), nil
}

func (svc *s3Impl) Get(ctx context.Context, key string) (body []byte, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	out, err := svc.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrObjectNotFound
		}

		log.Error().Err(err).Str("key", key).Msg("failed to get object from S3")

		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer out.Body.Close()

	body, err = io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	return body, nil
}

func (svc *s3Impl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object from S3")

		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	return nil
}

// URL is the public address of key under the configured domain.
func (svc *s3Impl) URL(key string) string {
	return svc.domain + "/" + strings.TrimPrefix(key, "/")
}
