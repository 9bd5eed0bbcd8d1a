package dawg

import "errors"

// Sentinel errors, checked with errors.Is. Callers should treat all of
// these as fatal and non-retryable: the builder and reader are not required
// to be usable after returning one.
var (
	// ErrPrecondition covers invalid AddWord input (bad letters, empty
	// words), calling AddWord outside ADDING_WORDS, compressing twice, or
	// saving before compression completes. The reader's queries never
	// return it: an empty query simply reports false.
	ErrPrecondition = errors.New("dawg: precondition violated")

	// ErrCorruptFile covers file-too-short, header/content mismatches,
	// word-count mismatches, and fewer than the minimum number of nodes.
	ErrCorruptFile = errors.New("dawg: corrupt file")

	// ErrCapacityExceeded covers a compressed node count that would not fit
	// the on-disk 22-bit child index. (An arena whose element does not fit
	// its block size panics in arena.New instead.)
	ErrCapacityExceeded = errors.New("dawg: capacity exceeded")
)
