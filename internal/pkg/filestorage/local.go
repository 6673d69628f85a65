package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bayms/backend/internal/pkg/logger"
)

// LocalStorage stores blobs on the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL to access the stored files (optional)
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is optional; if provided, it is prepended to returned references.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Save stores the content under basePath at the given relative path
func (ls *LocalStorage) Save(path string, content io.Reader, opts SaveOptions) (string, error) {
	cleaned := strings.TrimLeft(filepath.Clean("/"+path), "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("invalid blob path: %q", path)
	}

	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(cleaned))

	if !opts.Overwrite {
		if _, err := os.Stat(dstPath); err == nil {
			return "", fmt.Errorf("blob already exists at %s", cleaned)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create blob subdirectory")
		return "", fmt.Errorf("failed to create blob subdirectory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, content); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy blob content")
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save blob content: %w", err)
	}

	reference := cleaned
	if ls.baseURL != "" {
		reference = strings.TrimRight(ls.baseURL, "/") + "/" + cleaned
	}

	logger.Info().Str("path", cleaned).Str("reference", reference).Msg("Blob saved")
	return reference, nil
}

// Delete removes a blob from the storage filesystem. Deleting a blob
// that does not exist is treated as success.
func (ls *LocalStorage) Delete(path string) error {
	if path == "" {
		return nil
	}

	cleaned := strings.TrimLeft(filepath.Clean("/"+path), "/")
	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(cleaned))

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("Blob to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete blob")
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}
