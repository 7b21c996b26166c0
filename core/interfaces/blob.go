// ABOUTME: BlobStore interface for the host's key-value persistence capability
// ABOUTME: Narrow read/write contract over one opaque persisted data blob

package interfaces

import "context"

// BlobStore is the minimal persistence capability the article store consumes
// from the host: load the entire persisted blob, save the entire persisted
// blob. Implementations can be SQLite, Redis, in-memory or any other
// key-value facility.
//
// The blob is a single JSON document owned by the store; implementations
// must treat it as opaque bytes.
type BlobStore interface {
	// ReadBlob returns the entire persisted blob, or nil when nothing has
	// been persisted yet. An error indicates a host I/O fault.
	ReadBlob(ctx context.Context) ([]byte, error)

	// WriteBlob replaces the entire persisted blob.
	WriteBlob(ctx context.Context, data []byte) error
}
