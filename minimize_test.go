package dawg

import "testing"

// TestCompressIsBoundedPerCall checks that a single Compress call does at
// most one removeDuplicates step, not the whole minimization, by counting
// calls against the number of first-children collected.
func TestCompressIsBoundedPerCall(t *testing.T) {
	b := NewBuilder()
	for _, w := range []string{"BAT", "BATS", "CAR", "CARS", "CAT", "CATS", "FAT"} {
		if err := b.AddWord(w); err != nil {
			t.Fatal(err)
		}
	}

	done, err := b.Compress()
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Fatal("first call finished compression, want steps to remain after it")
	}
	firstChildCount := len(b.firstChildren)
	if firstChildCount != 22 {
		t.Fatalf("collected %d first-children, want 22", firstChildCount)
	}

	steps := 1
	for !done {
		done, err = b.Compress()
		if err != nil {
			t.Fatal(err)
		}
		steps++
		if steps > firstChildCount+1 {
			t.Fatalf("Compress did not converge within %d steps", firstChildCount+1)
		}
	}
	if steps != firstChildCount {
		t.Errorf("took %d calls to converge, want %d (one per first-child)", steps, firstChildCount)
	}
}

func TestCollectFirstChildrenPreOrder(t *testing.T) {
	b := NewBuilder()
	if err := b.AddWord("CAT"); err != nil {
		t.Fatal(err)
	}
	b.firstChildren = b.firstChildren[:0]
	b.collectFirstChildren(b.root)

	if len(b.firstChildren) == 0 {
		t.Fatal("collectFirstChildren found nothing")
	}
	// The root's own first-child (head of the forward/reverse marker
	// siblings) must be first.
	if b.firstChildren[0] != b.n(b.root).firstChild {
		t.Error("first collected child is not the root's firstChild")
	}
}

func TestAreSimilarIdenticalSubtrees(t *testing.T) {
	b := NewBuilder()
	for _, w := range []string{"BAT", "CAT"} {
		if err := b.AddWord(w); err != nil {
			t.Fatal(err)
		}
	}
	b.firstChildren = b.firstChildren[:0]
	b.collectFirstChildren(b.root)

	// BAT and CAT share the identical "AT" suffix subtree; find the "A"
	// node under each root letter and confirm they are similar.
	var findChild func(parent nodeRef, letter byte) nodeRef
	findChild = func(parent nodeRef, letter byte) nodeRef {
		cur := b.n(parent).firstChild
		for cur != noRef {
			if b.n(cur).letter == letter {
				return cur
			}
			cur = b.n(cur).nextSibling
		}
		return noRef
	}

	bNode := findChild(b.forwardRoot, 'B')
	cNode := findChild(b.forwardRoot, 'C')
	if bNode == noRef || cNode == noRef {
		t.Fatal("could not locate B/C children of forwardRoot")
	}
	aUnderB := findChild(bNode, 'A')
	aUnderC := findChild(cNode, 'A')
	if aUnderB == noRef || aUnderC == noRef {
		t.Fatal("could not locate A children")
	}
	if !b.areSimilar(aUnderB, aUnderC) {
		t.Error("identical AT suffix subtrees reported as dissimilar")
	}
}

func TestAreSimilarDifferentTerminal(t *testing.T) {
	b := NewBuilder()
	for _, w := range []string{"CAT", "CATS", "BATS"} {
		if err := b.AddWord(w); err != nil {
			t.Fatal(err)
		}
	}
	// CAT and CATS share one T node under CA, which is terminal (CAT is a
	// word) and leads to S. BATS's T node under BA has the same letter,
	// no siblings and a similar S child, but is not terminal, so the two T
	// nodes must not be judged similar.
	var findChild func(parent nodeRef, letter byte) nodeRef
	findChild = func(parent nodeRef, letter byte) nodeRef {
		cur := b.n(parent).firstChild
		for cur != noRef {
			if b.n(cur).letter == letter {
				return cur
			}
			cur = b.n(cur).nextSibling
		}
		return noRef
	}
	c := findChild(b.forwardRoot, 'C')
	a := findChild(c, 'A')
	tNode := findChild(a, 'T')
	if tNode == noRef {
		t.Fatal("could not locate T node")
	}
	if !b.n(tNode).isTerminal {
		t.Error("T node of CAT/CATS should be terminal (CAT is a word)")
	}
	bA := findChild(findChild(b.forwardRoot, 'B'), 'A')
	bTNode := findChild(bA, 'T')
	if bTNode == noRef {
		t.Fatal("could not locate T node of BATS")
	}
	if b.areSimilar(tNode, bTNode) {
		t.Error("T nodes differing only in terminal flag reported as similar")
	}
}
