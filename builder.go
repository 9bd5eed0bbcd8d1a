// Package dawg builds a Directed Acyclic Word Graph (DAWG) for a fixed
// lexicon of uppercase A-Z words, and reads it back for fast membership
// queries.
//
// Building happens in three stages, enforced by the Builder's internal
// state machine: add every word with AddWord, call Compress repeatedly
// until it reports done, then SaveAsDawg. Words are stored twice: once
// under a forward-word subtree, and once (reversed, suffix by suffix)
// under a reverse-suffix subtree, so that the same file can answer both
// "is W a word" and "is W a suffix of some word written backwards".
//
// The on-disk format packs each surviving node into 32 bits (a 22-bit
// child index, an 8-bit letter, and two flag bits) behind a small fixed
// header. Open loads that file and answers IsWord / IsReversePartWord by
// walking sibling-linked child lists.
package dawg

import (
	"github.com/rs/zerolog"

	"github.com/corpusword/dawg/internal/arena"
)

type builderState int

const (
	stateAddingWords builderState = iota
	stateCompressing
	stateCompressed
)

// Diagnostics reports running and post-compression counters.
type Diagnostics struct {
	NumNodes            uint32 // total nodes ever allocated
	NumWords            uint32 // non-empty AddWord calls
	NumWordLetters      uint32 // forward-word letters only
	NumLetters          uint32 // letter insertions across all paths, forward and reverse
	NumReversePartWords uint32 // reverse suffixes added, including ones that matched existing nodes

	NumFirstChildrenBeforeCompression uint32
	NumFirstChildrenAfterCompression  uint32
	NumNodesAfterCompression          uint32
}

// Builder constructs a DAWG one word at a time, then compresses and
// serializes it. The zero value is not usable; construct one with
// NewBuilder.
type Builder struct {
	arena *arena.Arena[node]

	root        nodeRef
	forwardRoot nodeRef
	reverseRoot nodeRef

	state builderState
	diag  Diagnostics

	firstChildren []nodeRef
	compressIdx   int

	logger zerolog.Logger
}

// Option configures a Builder constructed by NewBuilder.
type Option func(*Builder)

// WithLogger attaches a zerolog.Logger for lifecycle and per-step
// diagnostics. The default is zerolog.Nop(), which logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// WithBlockSize overrides the arena's block size in bytes. The default is
// arena.DefaultBlockSize.
func WithBlockSize(blockSizeBytes int) Option {
	return func(b *Builder) { b.arena = arena.New[node](blockSizeBytes) }
}

// NewBuilder creates an empty Builder, ready for AddWord calls. The root
// and its two marker children (forward-word and reverse-suffix) are
// pre-allocated as the sorted sibling pair the on-disk format depends on.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	if b.arena == nil {
		b.arena = arena.New[node](arena.DefaultBlockSize)
	}

	b.root = b.allocNode(noRef, defaultLetter, false)
	b.forwardRoot = b.allocNode(b.root, forwardRootLetter, false)
	b.reverseRoot = b.allocNode(b.root, reverseRootLetter, false)

	rootNode := b.n(b.root)
	rootNode.firstChild = b.forwardRoot
	b.n(b.forwardRoot).nextSibling = b.reverseRoot

	return b
}

func (b *Builder) n(ref nodeRef) *node {
	return b.arena.Get(ref)
}

func (b *Builder) allocNode(parent nodeRef, letter byte, isTerminal bool) nodeRef {
	ref, nd := b.arena.Alloc()
	nd.firstChild = noRef
	nd.nextSibling = noRef
	nd.originalParent = parent
	nd.letter = letter
	nd.isTerminal = isTerminal
	nd.nodeNumber = unassignedNodeNumber
	b.diag.NumNodes++
	return ref
}

// AddWord adds a non-empty sequence of uppercase A-Z letters to the
// builder: once under the forward-word subtree, and once (reversed, one
// per non-empty suffix) under the reverse-suffix subtree. Adding the same
// word twice is idempotent. AddWord fails if the builder is not in its
// initial adding-words state, or if s is empty or contains anything other
// than A-Z.
func (b *Builder) AddWord(s string) error {
	if b.state != stateAddingWords {
		return ErrPrecondition
	}
	if len(s) == 0 {
		return ErrPrecondition
	}
	for i := 0; i < len(s); i++ {
		if !isValidLetter(s[i]) {
			return ErrPrecondition
		}
	}

	cur := b.forwardRoot
	for i := 0; i < len(s); i++ {
		isTerminal := i == len(s)-1
		cur = b.addChild(cur, s[i], isTerminal)
	}

	b.diag.NumWords++
	b.diag.NumWordLetters += uint32(len(s))
	b.addReversedPartWords(s)

	b.logger.Debug().Str("word", s).Msg("added word")
	return nil
}

// addChild inserts (or reuses) letter as a child of parent, keeping the
// sibling chain strictly ascending by letter. Reusing an existing node may
// promote isTerminal from false to true, but never demotes it.
func (b *Builder) addChild(parent nodeRef, letter byte, isTerminal bool) nodeRef {
	b.diag.NumLetters++

	parentNode := b.n(parent)
	if parentNode.firstChild == noRef {
		child := b.allocNode(parent, letter, isTerminal)
		b.n(parent).firstChild = child
		return child
	}

	prev := noRef
	cur := parentNode.firstChild
	for cur != noRef {
		curNode := b.n(cur)
		switch {
		case curNode.letter == letter:
			if isTerminal {
				curNode.isTerminal = true
			}
			return cur
		case letter < curNode.letter:
			newRef := b.allocNode(parent, letter, isTerminal)
			b.n(newRef).nextSibling = cur
			if prev == noRef {
				b.n(parent).firstChild = newRef
			} else {
				b.n(prev).nextSibling = newRef
			}
			return newRef
		}
		prev = cur
		cur = curNode.nextSibling
	}

	newRef := b.allocNode(parent, letter, isTerminal)
	b.n(prev).nextSibling = newRef
	return newRef
}

// addReversedPartWords adds every non-empty suffix of the reversed word
// (equivalently, the reversal of every non-empty prefix of word) beneath
// the reverse-suffix root. For "CATS" (length 4) this adds "STAC", "TAC",
// "AC" and "C".
func (b *Builder) addReversedPartWords(word string) {
	for length := len(word); length > 0; length-- {
		cur := b.reverseRoot
		for idx := length - 1; idx >= 0; idx-- {
			cur = b.addChild(cur, word[idx], idx == 0)
		}
		b.diag.NumReversePartWords++
	}
}

// Diagnostics returns a snapshot of the builder's running counters.
func (b *Builder) Diagnostics() Diagnostics {
	return b.diag
}
