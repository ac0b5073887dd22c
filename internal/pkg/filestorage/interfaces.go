package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile saves an uploaded file and returns the URL it is reachable under
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file; deleting an absent file is a no-op
	DeleteFile(filePath string) error
}
