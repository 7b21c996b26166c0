// ABOUTME: In-memory blob store for tests and ephemeral deployments
// ABOUTME: Holds the persisted blob in process memory behind a mutex

package memory

import (
	"context"
	"sync"
)

// MemoryBlobStore implements the BlobStore interface in process memory
type MemoryBlobStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryBlobStore creates a new in-memory blob store
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{}
}

// ReadBlob returns a copy of the stored blob, or nil when nothing was written
func (s *MemoryBlobStore) ReadBlob(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, nil
	}

	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// WriteBlob replaces the stored blob with a copy of data
func (s *MemoryBlobStore) WriteBlob(ctx context.Context, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}
