package contracts

import "context"

type ObjectStorage interface {
	UploadImage(ctx context.Context, data []byte, fileName, contentType string) (string, error)
}
