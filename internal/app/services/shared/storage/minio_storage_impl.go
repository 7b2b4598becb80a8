package storage

import (
	"bytes"
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	objectStorageInstance contracts.ObjectStorage
	onceObjectStorage     sync.Once
)

// minioObjectStorage archives uploaded document images so extractions can be
// audited later. Objects are written under the configured bucket as-is.
type minioObjectStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioObjectStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.ObjectStorage {
	onceObjectStorage.Do(func() {
		objectStorageInstance = &minioObjectStorage{
			MinioClient: minioClient,
			BucketName:  bucketName,
			Log:         logger,
		}
	})
	return objectStorageInstance
}

func (s *minioObjectStorage) UploadImage(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("minioObjectStorage.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)

	reader := bytes.NewReader(data)
	info, err := s.MinioClient.PutObject(ctx, s.BucketName, fileName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.Log.Error("minioObjectStorage.UploadImage error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, s.BucketName)
	}

	return info.Key, nil
}
