package filestorage

import (
	"io"
	"mime/multipart"
)

// FileStorage keeps imported timetable files
type FileStorage interface {
	// SaveFile stores an uploaded file under subPath and returns its storage path
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// SaveReader stores the content of r; originalName only contributes its extension
	SaveReader(r io.Reader, originalName, subPath string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(storedPath string) error

	// GetFullPath returns the filesystem path of a stored file
	GetFullPath(storedPath string) string
}
