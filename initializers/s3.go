package initializers

import (
	"context"
	"erp-tools-backend/config"
	filestorage "erp-tools-backend/lib/file-storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	filestorage.NewInstance(minioClient)
	if err = filestorage.Instance.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Error("Ошибка проверки бакета S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
