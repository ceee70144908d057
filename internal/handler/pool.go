package handler

import (
	"bytes"
	"sync"
)

const (
	// Resolved trees for mid-tier items usually encode to a few kilobytes,
	// so buffers start at 4KB to avoid regrowth on the common path.
	initialBufferSize = 4 << 10
	// Deep trees over large projects can balloon; buffers that grew past
	// this are dropped instead of pinning memory in the pool.
	maxPooledBufferSize = 256 << 10
)

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool, discarding
// buffers that grew beyond the pooled size cap
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
