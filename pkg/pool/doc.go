// Package pool implements type-safe object pooling for matforge's encode and
// decode paths. It builds on sync.Pool and adds statistics and automatic
// reset, so container serialization can reuse scratch buffers instead of
// allocating per call.
//
// Core types:
//
//   - Pool[T]: generic pool implementation for any type T
//   - BufferPool: size-bucketed byte buffers (512B to 16MB)
//
// Global pools are provided for the common cases:
//
//	buf := pool.GetByteSlice()
//	defer pool.PutByteSlice(buf)
//
//	scratch := pool.GlobalBufferPool.Get(64 * 1024)
//	defer pool.GlobalBufferPool.Put(scratch)
//
// Pools are safe for concurrent use. Objects must not be touched after they
// are returned.
package pool
