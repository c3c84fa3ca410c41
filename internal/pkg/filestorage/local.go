package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dermofet/MephiApp-sub000/internal/pkg/logger"
	"github.com/google/uuid"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // Optional prefix of the returned paths
}

// NewLocalStorage creates a new LocalStorage instance and ensures basePath exists.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile saves an uploaded file to a subdirectory
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	return ls.SaveReader(file, fileHeader.Filename, subPath)
}

// SaveReader writes r under a fresh uuid name, keeping the extension of originalName
func (ls *LocalStorage) SaveReader(r io.Reader, originalName, subPath string) (string, error) {
	subPath, err := cleanRelative(subPath)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(ls.basePath, subPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	uniqueFilename := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	dstPath := filepath.Join(dir, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, r); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	stored := filepath.ToSlash(filepath.Join(subPath, uniqueFilename))
	if ls.baseURL != "" {
		stored = strings.TrimRight(ls.baseURL, "/") + "/" + stored
	}

	logger.Info().Str("filename", originalName).Str("stored_as", stored).Msg("File saved successfully")
	return stored, nil
}

// DeleteFile removes a stored file. Missing files are not an error.
func (ls *LocalStorage) DeleteFile(storedPath string) error {
	if storedPath == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(storedPath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", storedPath)
	}

	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath maps a stored path back to the filesystem, or "" when it escapes the storage root
func (ls *LocalStorage) GetFullPath(storedPath string) string {
	if ls.baseURL != "" {
		storedPath = strings.TrimPrefix(storedPath, strings.TrimRight(ls.baseURL, "/")+"/")
	}
	rel, err := cleanRelative(storedPath)
	if err != nil || rel == "" {
		return ""
	}
	return filepath.Join(ls.basePath, rel)
}

// cleanRelative rejects absolute paths and paths leaving the storage root
func cleanRelative(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	cleaned := filepath.Clean(filepath.FromSlash(p))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage path: %s", p)
	}
	if cleaned == "." {
		return "", nil
	}
	return cleaned, nil
}
