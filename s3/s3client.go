package s3client

import (
	"bytes"
	"context"
	"io"

	"hrms-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Provider interface {
	MakeBucket(ctx context.Context) error
	Put(ctx context.Context, objectKey, contentType string, body []byte) error
	Get(ctx context.Context, objectKey string) (body []byte, err error)
	Remove(ctx context.Context, objectKey string) error
}

type s3client struct {
	minioClient *minio.Client
}

func NewClient() (Provider, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKey, config.Conf.S3.SecretKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &s3client{minioClient: minioClient}, nil
}

func (s s3client) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.Bucket
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func (s s3client) Put(ctx context.Context, objectKey, contentType string, body []byte) error {
	reader := bytes.NewReader(body)
	_, err := s.minioClient.PutObject(ctx, config.Conf.S3.Bucket, objectKey, reader, int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (s s3client) Get(ctx context.Context, objectKey string) (body []byte, err error) {
	object, err := s.minioClient.GetObject(ctx, config.Conf.S3.Bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}

func (s s3client) Remove(ctx context.Context, objectKey string) error {
	return s.minioClient.RemoveObject(ctx, config.Conf.S3.Bucket, objectKey, minio.RemoveObjectOptions{})
}
