package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the blob-upload boundary. Implementations persist the
// uploaded file and return a URL it can be fetched from; an error fails the
// whole request.
type FileStorage interface {
	// SaveFile saves an uploaded file and returns its public URL
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath lets you specify a subdirectory for storing the file
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage given its public URL
	DeleteFile(fileURL string) error
}
