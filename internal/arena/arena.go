// Package arena provides a bulk, block-based allocator for fixed-layout
// values of a single type. It exists to avoid the overhead of millions of
// individual heap allocations when building a trie: nodes are carved out of
// large blocks and the whole arena is released in one sweep, rather than
// tracked and freed one at a time.
package arena

import "unsafe"

// DefaultBlockSize is the default number of bytes per block, chosen to be
// far larger than a single trie node.
const DefaultBlockSize = 64 * 1024

// Arena is a bump allocator for values of type T. The zero value is not
// usable; construct one with New. An Arena must not be copied after its
// first call to Alloc, and it is not safe for concurrent use without
// external synchronization.
type Arena[T any] struct {
	elemsPerBlock int
	blocks        [][]T
}

// New creates an Arena that carves its blocks into chunks of roughly
// blockSizeBytes bytes each. It panics if a single T does not fit within
// blockSizeBytes, since no allocation could ever be satisfied.
func New[T any](blockSizeBytes int) *Arena[T] {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		elemSize = 1
	}
	elemsPerBlock := blockSizeBytes / elemSize
	if elemsPerBlock < 1 {
		panic("arena: element size exceeds block size")
	}
	return &Arena[T]{elemsPerBlock: elemsPerBlock}
}

// Ref is a stable, comparable handle to an allocated value. It remains
// valid for the lifetime of the Arena (until Release is called).
type Ref int32

// Alloc carves a new zero-valued T out of the current block, starting a new
// block when the current one is full. The returned pointer is stable: it
// remains valid until Release is called, since existing blocks are never
// grown or moved.
func (a *Arena[T]) Alloc() (Ref, *T) {
	if len(a.blocks) == 0 || len(a.blocks[len(a.blocks)-1]) == cap(a.blocks[len(a.blocks)-1]) {
		a.blocks = append(a.blocks, make([]T, 0, a.elemsPerBlock))
	}
	blockIdx := len(a.blocks) - 1
	block := &a.blocks[blockIdx]
	offset := len(*block)
	*block = (*block)[:offset+1]

	ref := Ref(blockIdx*a.elemsPerBlock + offset)
	return ref, &(*block)[offset]
}

// Get dereferences a Ref returned by Alloc.
func (a *Arena[T]) Get(ref Ref) *T {
	blockIdx := int(ref) / a.elemsPerBlock
	offset := int(ref) % a.elemsPerBlock
	return &a.blocks[blockIdx][offset]
}

// Len reports the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.blocks) == 0 {
		return 0
	}
	full := (len(a.blocks) - 1) * a.elemsPerBlock
	return full + len(a.blocks[len(a.blocks)-1])
}

// Release drops every block, freeing the arena's memory in one sweep. The
// Arena is empty afterwards and may be reused.
func (a *Arena[T]) Release() {
	a.blocks = nil
}
