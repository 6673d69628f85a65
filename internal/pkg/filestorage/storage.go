package filestorage

import "io"

// SaveOptions controls how a blob is stored
type SaveOptions struct {
	// CacheControl is the cache policy recorded with the blob, in
	// HTTP Cache-Control syntax (e.g. "3600"). It is advisory:
	// object-store backends record it as blob metadata, while
	// LocalStorage ignores it because local files are served by the
	// static file handler, which sets its own response headers.
	CacheControl string
	// Overwrite replaces an existing blob at the same path instead of
	// failing
	Overwrite bool
}

// BlobStorage defines the interface for blob store operations. Paths
// are forward-slash separated and namespaced by the caller.
type BlobStorage interface {
	// Save stores the content at the given path and returns the
	// reference under which it can be retrieved
	Save(path string, content io.Reader, opts SaveOptions) (string, error)

	// Delete removes a blob from storage; deleting an absent blob is
	// not an error
	Delete(path string) error
}
