package dawg

// Compress drives the minimizer one cooperative step at a time. The first
// call (from the adding-words state) collects every first-child in
// pre-order and starts compressing; each subsequent call compares one
// first-child against the remainder of the list and advances. Compress
// returns true once compression is complete, at which point node numbers
// have been assigned and post-compression diagnostics are available.
// Calling Compress again after it has returned true is an error.
func (b *Builder) Compress() (bool, error) {
	if b.state == stateCompressed {
		return false, ErrPrecondition
	}

	if b.state == stateAddingWords {
		b.state = stateCompressing
		b.firstChildren = b.firstChildren[:0]
		b.collectFirstChildren(b.root)
		b.diag.NumFirstChildrenBeforeCompression = uint32(len(b.firstChildren))
		b.compressIdx = 0
		b.logger.Info().Int("first_children", len(b.firstChildren)).Msg("compression started")
	}

	if len(b.firstChildren) == 0 || b.compressIdx >= len(b.firstChildren)-1 {
		b.state = stateCompressed
		b.assignNodeNumbers()
		b.updateAfterCompressionDiagnostics()
		b.logger.Info().
			Uint32("nodes", b.diag.NumNodesAfterCompression).
			Uint32("first_children", b.diag.NumFirstChildrenAfterCompression).
			Msg("compression finished")
		return true, nil
	}

	b.removeDuplicates(b.compressIdx)
	b.logger.Debug().Int("step", b.compressIdx).Int("of", len(b.firstChildren)).Msg("compression step")
	b.compressIdx++
	return false, nil
}

// collectFirstChildren walks the trie in pre-order, recording every node
// reached as a first-child. Only first-children are merge candidates: a
// sibling chain is addressed by its head, so siblings carry no independent
// identity worth deduplicating on their own.
func (b *Builder) collectFirstChildren(parent nodeRef) {
	if parent == noRef {
		return
	}
	p := b.n(parent)
	if p.firstChild != noRef {
		b.firstChildren = append(b.firstChildren, p.firstChild)
		b.collectFirstChildren(p.firstChild)
	}
	if p.nextSibling != noRef {
		b.collectFirstChildren(p.nextSibling)
	}
}

// areSimilar reports whether the entire forward subgraphs rooted at a and
// bRef are equivalent: same letter, same terminal flag, similar sibling
// chains, and similar child subtrees.
func (b *Builder) areSimilar(a, bRef nodeRef) bool {
	if a == bRef {
		return true
	}
	if a == noRef || bRef == noRef {
		return false
	}
	na, nb := b.n(a), b.n(bRef)
	if na.letter != nb.letter {
		return false
	}
	if na.isTerminal != nb.isTerminal {
		return false
	}
	if !b.areSimilar(na.nextSibling, nb.nextSibling) {
		return false
	}
	return b.areSimilar(na.firstChild, nb.firstChild)
}

// removeDuplicates compares firstChildren[idx] against every later
// first-child that isn't already marked duplicate. Similar ones are marked
// duplicate and their original parent's firstChild is redirected to idx's
// head. Earlier entries are always the canonical representative.
func (b *Builder) removeDuplicates(idx int) {
	node1 := b.firstChildren[idx]
	for j := idx + 1; j < len(b.firstChildren); j++ {
		node2 := b.firstChildren[j]
		n2 := b.n(node2)
		if !n2.isDuplicate && b.areSimilar(node1, node2) {
			n2.isDuplicate = true
			b.n(n2.originalParent).firstChild = node1
		}
	}
}

// assignNodeNumbers numbers every surviving node in pre-order, starting at
// 0 for the root, keeping a parent's children contiguous in number space.
func (b *Builder) assignNodeNumbers() {
	b.resetNodeNumbers(b.root)
	next := int32(0)
	b.numberTree(b.root, &next)
}

func (b *Builder) resetNodeNumbers(ref nodeRef) {
	if ref == noRef {
		return
	}
	n := b.n(ref)
	n.nodeNumber = unassignedNodeNumber
	b.resetNodeNumbers(n.nextSibling)
	b.resetNodeNumbers(n.firstChild)
}

func (b *Builder) numberTree(ref nodeRef, next *int32) {
	if ref == noRef {
		return
	}
	n := b.n(ref)
	if n.isDuplicate || n.nodeNumber != unassignedNodeNumber {
		return
	}

	n.nodeNumber = *next
	*next++
	sib := n.nextSibling
	for sib != noRef {
		sn := b.n(sib)
		sn.nodeNumber = *next
		*next++
		sib = sn.nextSibling
	}

	b.numberTree(n.firstChild, next)
	sib = n.nextSibling
	for sib != noRef {
		sn := b.n(sib)
		b.numberTree(sn.firstChild, next)
		sib = sn.nextSibling
	}
}

// updateAfterCompressionDiagnostics recomputes the surviving first-children
// count and the surviving total node count (via a mark-and-count walk),
// which should agree with the count produced by assignNodeNumbers.
func (b *Builder) updateAfterCompressionDiagnostics() {
	duplicates := 0
	for _, ref := range b.firstChildren {
		if b.n(ref).isDuplicate {
			duplicates++
		}
	}
	b.diag.NumFirstChildrenAfterCompression = uint32(len(b.firstChildren) - duplicates)
	b.diag.NumNodesAfterCompression = b.countSurvivingNodes()
}

func (b *Builder) countSurvivingNodes() uint32 {
	b.setCounted(b.root, false)
	return b.countTree(b.root)
}

func (b *Builder) setCounted(ref nodeRef, val bool) {
	if ref == noRef {
		return
	}
	n := b.n(ref)
	n.isCounted = val
	b.setCounted(n.nextSibling, val)
	b.setCounted(n.firstChild, val)
}

func (b *Builder) countTree(ref nodeRef) uint32 {
	if ref == noRef {
		return 0
	}
	n := b.n(ref)
	var count uint32
	if !n.isCounted {
		count = 1
		n.isCounted = true
	}
	count += b.countTree(n.nextSibling)
	count += b.countTree(n.firstChild)
	return count
}
