package hues

import "sync"

// Render scratch buffers are pooled; every buffer is exactly BufferSize so
// truncation behavior is identical across calls.
var bufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, BufferSize)
		return &b
	},
}

func acquireBuffer() *[]byte {
	return bufferPool.Get().(*[]byte)
}

func releaseBuffer(b *[]byte) {
	bufferPool.Put(b)
}
