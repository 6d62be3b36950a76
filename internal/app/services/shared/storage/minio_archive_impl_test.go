package storage

import (
	"context"
	"errors"
	"io"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/dto/requests"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockObjectPutter struct {
	mock.Mock
}

func (m *MockObjectPutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	body, _ := io.ReadAll(reader)
	args := m.Called(ctx, bucketName, objectName, string(body), objectSize, opts.ContentType)
	return minio.UploadInfo{}, args.Error(0)
}

func TestMinioArchive_Archive(t *testing.T) {
	request := requests.SupplyRequest{
		requests.KeyAdditionalComment: requests.Description{Description: "urgent"},
	}
	expectedBody := `{"additionalComment":{"description":"urgent"}}`

	t.Run("Stores the request under the response id", func(t *testing.T) {
		putter := new(MockObjectPutter)
		putter.On("PutObject", mock.Anything, "submissions", "abc.json", expectedBody, int64(len(expectedBody)), constvars.MIMEApplicationJSON).
			Return(nil)

		archive := newMinioArchive(putter, "submissions", zap.NewNop())
		err := archive.Archive(context.Background(), "abc", request)
		require.NoError(t, err)
		putter.AssertExpectations(t)
	})

	t.Run("Put failure is reported", func(t *testing.T) {
		putter := new(MockObjectPutter)
		putter.On("PutObject", mock.Anything, "submissions", "abc.json", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("bucket missing"))

		archive := newMinioArchive(putter, "submissions", zap.NewNop())
		err := archive.Archive(context.Background(), "abc", request)
		assert.Error(t, err)
	})
}
