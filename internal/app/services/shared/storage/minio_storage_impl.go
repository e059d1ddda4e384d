package storage

import (
	"context"
	"fmt"
	"io"
	"trekora-service/internal/app/config"
	"trekora-service/internal/app/contracts"
	"trekora-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient  *minio.Client
	DriverConfig *config.DriverConfig
}

func NewMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig) contracts.StorageService {
	return &minioStorage{
		MinioClient:  minioClient,
		DriverConfig: driverConfig,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error) {
	bucketName := m.DriverConfig.Minio.BucketName
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrStorageUploadFile(err)
	}

	scheme := "http"
	if m.DriverConfig.Minio.UseSSL {
		scheme = "https"
	}
	objectURL := fmt.Sprintf("%s://%s:%s/%s/%s",
		scheme,
		m.DriverConfig.Minio.Host,
		m.DriverConfig.Minio.Port,
		bucketName,
		objectName,
	)
	return objectURL, nil
}
