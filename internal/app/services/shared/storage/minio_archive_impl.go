package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/dto/requests"
	"necessitous-service/internal/pkg/exceptions"
	"necessitous-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// objectPutter is the part of *minio.Client the archive needs.
type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioArchive struct {
	MinioClient objectPutter
	BucketName  string
	Log         *zap.Logger
}

func NewMinioArchive(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.SubmissionArchive {
	return newMinioArchive(minioClient, bucketName, logger)
}

func newMinioArchive(client objectPutter, bucketName string, logger *zap.Logger) *minioArchive {
	return &minioArchive{
		MinioClient: client,
		BucketName:  bucketName,
		Log:         logger,
	}
}

// Archive stores the sent request as <responseID>.json.
func (m *minioArchive) Archive(ctx context.Context, responseID string, request requests.SupplyRequest) error {
	requestID := utils.GetRequestID(ctx)
	objectName := fmt.Sprintf(constvars.ArchiveObjectNameFormat, responseID)
	m.Log.Info("minioArchive.Archive called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, m.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	payload, err := json.Marshal(request)
	if err != nil {
		m.Log.Error("minioArchive.Archive error marshaling request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = m.MinioClient.PutObject(ctx, m.BucketName, objectName, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		m.Log.Error("minioArchive.Archive error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, m.BucketName),
			zap.Error(err),
		)
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioArchive.Archive succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return nil
}
