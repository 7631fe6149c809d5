package pool

import (
	"sync"
	"sync/atomic"
)

// Pool represents a generic object pool with type safety.
// It wraps sync.Pool with statistics tracking and automatic reset
// functionality. The pool is safe for concurrent use.
type Pool[T any] struct {
	pool  sync.Pool
	new   func() T
	reset func(T)
	stats struct {
		allocated int64
		inUse     int64
		hits      int64
	}
}

// New creates a new typed pool with custom allocation and reset functions.
// The new function is called when the pool is empty. The reset function, if
// non-nil, is called before an object is returned to the pool.
//
// Example:
//
//	bufs := pool.New(
//	    func() *bytes.Buffer { return &bytes.Buffer{} },
//	    func(b *bytes.Buffer) { b.Reset() },
//	)
func New[T any](new func() T, reset func(T)) *Pool[T] {
	p := &Pool[T]{
		new:   new,
		reset: reset,
	}
	p.pool.New = func() interface{} {
		atomic.AddInt64(&p.stats.allocated, 1)
		return new()
	}
	return p
}

// Get retrieves an object from the pool, creating one when the pool is
// empty. Safe for concurrent use.
func (p *Pool[T]) Get() T {
	atomic.AddInt64(&p.stats.inUse, 1)
	obj := p.pool.Get().(T)
	atomic.AddInt64(&p.stats.hits, 1)
	return obj
}

// Put returns an object to the pool for reuse, resetting it first when a
// reset function was provided.
func (p *Pool[T]) Put(obj T) {
	if p.reset != nil {
		p.reset(obj)
	}
	atomic.AddInt64(&p.stats.inUse, -1)
	p.pool.Put(obj)
}

// Stats returns current pool statistics: total objects created, objects
// currently checked out, and successful Get operations.
func (p *Pool[T]) Stats() (allocated, inUse, hits int64) {
	return atomic.LoadInt64(&p.stats.allocated),
		atomic.LoadInt64(&p.stats.inUse),
		atomic.LoadInt64(&p.stats.hits)
}

// ByteSlicePool provides pooling for general-purpose byte slices.
// Slices are pre-allocated with 1KB capacity.
var ByteSlicePool = New(
	func() []byte {
		return make([]byte, 0, 1024)
	},
	nil,
)

// GetByteSlice retrieves a byte slice from the global pool.
// The returned slice has zero length and at least 1KB capacity.
func GetByteSlice() []byte {
	return ByteSlicePool.Get()[:0]
}

// PutByteSlice returns a byte slice to the global pool for reuse.
// This function is safe to call with nil slices.
func PutByteSlice(b []byte) {
	if b != nil {
		ByteSlicePool.Put(b)
	}
}

// BufferPool manages byte buffer pooling with size-based buckets. It keeps
// one pool per power-of-two size class and serves each request from the
// smallest class that fits, which keeps container encode/decode scratch
// buffers from fragmenting.
type BufferPool struct {
	pools []*Pool[[]byte]
	sizes []int
}

// NewBufferPool creates a new buffer pool with predefined size buckets
// from 512 bytes to 16MB. Requests larger than the largest bucket are
// allocated directly without pooling.
func NewBufferPool() *BufferPool {
	sizes := []int{
		512,      // 512B
		1024,     // 1KB
		4096,     // 4KB
		16384,    // 16KB
		65536,    // 64KB
		262144,   // 256KB
		1048576,  // 1MB
		4194304,  // 4MB
		16777216, // 16MB
	}

	pools := make([]*Pool[[]byte], len(sizes))
	for i, size := range sizes {
		size := size // capture loop variable
		pools[i] = New(
			func() []byte {
				return make([]byte, size)
			},
			nil,
		)
	}

	return &BufferPool{
		pools: pools,
		sizes: sizes,
	}
}

// Get returns a buffer of at least the requested size from the pool.
// The returned buffer's length is the requested size; its capacity may be
// larger.
func (p *BufferPool) Get(size int) []byte {
	for i, s := range p.sizes {
		if s >= size {
			buf := p.pools[i].Get()
			return buf[:size]
		}
	}

	// Fallback to allocation for very large buffers
	return make([]byte, size)
}

// Put returns a buffer to the pool for reuse. Buffers whose capacity does
// not match a bucket are released to garbage collection.
func (p *BufferPool) Put(buf []byte) {
	size := cap(buf)

	for i, s := range p.sizes {
		if s == size {
			p.pools[i].Put(buf[:s])
			return
		}
	}
}

// GlobalBufferPool provides size-based byte buffer pooling for container
// encode and decode paths.
var GlobalBufferPool = NewBufferPool()
