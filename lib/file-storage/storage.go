package filestorage

import (
	"bytes"
	"context"
	"erp-tools-backend/config"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	Upload(ctx context.Context, key string, fileReader io.Reader, fileSize int64, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func (i impl) Upload(ctx context.Context, key string, fileReader io.Reader, fileSize int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key, fileReader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	return nil
}

func (i impl) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer obj.Close()
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, obj); err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return buf.Bytes(), nil
}
