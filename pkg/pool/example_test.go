// Package pool provides example usage of the object pool system.
package pool_test

import (
	"bytes"
	"fmt"

	"github.com/matforge/matforge/pkg/pool"
)

// Example demonstrates a custom typed pool.
func Example() {
	bufs := pool.New(
		func() *bytes.Buffer { return &bytes.Buffer{} },
		func(b *bytes.Buffer) { b.Reset() },
	)

	buf := bufs.Get()
	buf.WriteString("MATB")
	fmt.Println(buf.String())
	bufs.Put(buf)

	// Pooled buffers come back reset
	again := bufs.Get()
	defer bufs.Put(again)
	fmt.Println(again.Len())

	// Output:
	// MATB
	// 0
}

// ExampleBufferPool shows size-bucketed buffer reuse.
func ExampleBufferPool() {
	p := pool.NewBufferPool()

	buf := p.Get(2048) // served from the 4KB bucket
	fmt.Println(len(buf) >= 2048)
	p.Put(buf)

	// Output:
	// true
}

// ExampleGetByteSlice shows the global byte slice pool.
func ExampleGetByteSlice() {
	b := pool.GetByteSlice()
	defer pool.PutByteSlice(b)

	b = append(b, 0x4d, 0x41, 0x54, 0x42)
	fmt.Println(len(b))

	// Output:
	// 4
}
