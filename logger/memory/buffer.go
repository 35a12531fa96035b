package memory

import (
	"bytes"
	"sync"
)

// Buffer is a zap sink keeping the output in memory
type Buffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns the collected output
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Reset drops the collected output
func (b *Buffer) Reset() {
	b.mu.Lock()
	b.buf.Reset()
	b.mu.Unlock()
}

func (b *Buffer) Close() error { return nil }
func (b *Buffer) Sync() error  { return nil }
