package dawg

import "github.com/corpusword/dawg/internal/arena"

// nodeRef is a handle to a trie node, addressed by arena index rather than
// by pointer. After minimization the graph is a DAG with multiple parents
// per node; indices sidestep any aliasing concern that raw pointers with a
// back-reference (originalParent) would raise, since ownership always
// stays with the arena, never with a parent.
type nodeRef = arena.Ref

// noRef is the "no node" sentinel, distinct from any valid arena.Ref (which
// starts at 0), so it can't be confused with a reference to the root.
const noRef nodeRef = -1

// unassignedNodeNumber marks a node that has not yet been numbered during
// serialization.
const unassignedNodeNumber int32 = -1

// Letter alphabet: 26 uppercase letters plus two reserved sentinels that
// partition the trie into a forward-word half and a reverse-suffix half.
const (
	minLetter byte = 'A'
	maxLetter byte = 'Z'

	forwardRootLetter byte = '*'
	reverseRootLetter byte = '<'

	// defaultLetter is the root node's letter; it is never a legal input
	// letter.
	defaultLetter byte = ' '
)

// isValidLetter reports whether c is a legal AddWord input letter. The
// sentinel markers (forwardRootLetter, reverseRootLetter) are never valid
// input; they are only ever assigned internally by NewBuilder.
func isValidLetter(c byte) bool {
	return c >= minLetter && c <= maxLetter
}

// node is the in-memory, build-time trie node. Sibling chains are kept
// strictly ascending by letter, with firstChild at the smallest letter
// (see Builder.addChild).
type node struct {
	letter byte

	firstChild  nodeRef
	nextSibling nodeRef

	// originalParent is a back-reference to the parent at allocation time,
	// used only by the minimizer to redirect that parent's firstChild when
	// this node is found to duplicate an earlier one. It is never used for
	// traversal and is never cleared.
	originalParent nodeRef

	isTerminal bool

	// isDuplicate is set by the minimizer on first-children whose entire
	// subtree duplicates an earlier first-child.
	isDuplicate bool

	// isCounted is transient bookkeeping used when re-counting the number
	// of surviving (non-duplicate) nodes after compression. Since nodes
	// are addressed by a single stable arena index even when several
	// parents redirect to them, mutating this field directly (rather than
	// keeping a separate visited set) is race-free: every path to a shared
	// node reaches the same underlying node value.
	isCounted bool

	nodeNumber int32
}
