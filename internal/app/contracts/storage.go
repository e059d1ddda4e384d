package contracts

import (
	"context"
	"io"
)

type StorageService interface {
	// UploadFile stores the object and returns its publicly reachable URL.
	UploadFile(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error)
}
