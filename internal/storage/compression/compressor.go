// Package compression frames payloads as raw or lz4 blocks with a small header.
package compression

import (
	"fmt"
	"sync"
)

// Compressor defines the interface for compression algorithms.
type Compressor interface {
	// Name returns the name of the compression algorithm.
	Name() string

	// Compress returns a self-describing frame for data.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress.
	Decompress(frame []byte) ([]byte, error)
}

// Factory is a function that creates a new compressor instance.
type Factory func() Compressor

var (
	mu          sync.RWMutex
	compressors = make(map[string]Factory)
)

// Register registers a compressor factory with the given name.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	compressors[name] = factory
}

// Get returns a new compressor instance for the given name.
func Get(name string) (Compressor, error) {
	mu.RLock()
	factory, ok := compressors[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown compressor: %s", name)
	}

	return factory(), nil
}

// IsAvailable checks if a compressor with the given name is available.
func IsAvailable(name string) bool {
	mu.RLock()
	_, ok := compressors[name]
	mu.RUnlock()
	return ok
}

func init() {
	Register("none", func() Compressor { return &NoCompressor{} })
	Register("lz4", func() Compressor { return &LZ4Compressor{} })
}
