package dawg

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

const (
	lexiconNameSize = 32
	dateSize        = 20

	// maxNodeID is the largest node number that fits the on-disk 22-bit
	// child index.
	maxNodeID = 1<<22 - 1

	childIDMask  = 1<<22 - 1
	letterShift  = 22
	terminalBit  = uint32(1) << 30
	lastChildBit = uint32(1) << 31
)

// Header is the fixed, little-endian DAWG file header. It precedes exactly
// NumNodes packed 32-bit node records.
type Header struct {
	Size        uint32
	NumNodes    uint32
	LexiconName [lexiconNameSize]byte
	Date        [dateSize]byte
	NumWords    uint32
}

func headerSize() uint32 {
	return uint32(4 + 4 + lexiconNameSize + dateSize + 4)
}

// SaveAsDawg serializes the compressed trie to w: a fixed header followed
// by one packed 32-bit record per surviving node, in node-number order.
// SaveAsDawg fails if compression has not completed, or if the compressed
// node count would not fit the on-disk 22-bit child index.
func (b *Builder) SaveAsDawg(w io.Writer, lexiconName string) error {
	if b.state != stateCompressed {
		return fmt.Errorf("dawg: save before compression completed: %w", ErrPrecondition)
	}
	if b.diag.NumNodesAfterCompression > maxNodeID {
		return fmt.Errorf("dawg: %d nodes exceeds 22-bit limit: %w", b.diag.NumNodesAfterCompression, ErrCapacityExceeded)
	}

	hdr := Header{
		Size:     headerSize(),
		NumNodes: b.diag.NumNodesAfterCompression,
		NumWords: b.diag.NumWords,
	}
	copyTruncated(hdr.LexiconName[:], lexiconName)
	copyTruncated(hdr.Date[:], time.Now().Format("2006-01-02"))

	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("dawg: write header: %w", err)
	}

	numbered := 0
	for i := 0; i < b.arena.Len(); i++ {
		if b.n(nodeRef(i)).nodeNumber != unassignedNodeNumber {
			numbered++
		}
	}
	if numbered != int(hdr.NumNodes) {
		return fmt.Errorf("dawg: numbered %d nodes, expected %d: %w", numbered, hdr.NumNodes, ErrPrecondition)
	}
	records := b.buildRecords()
	if err := binary.Write(w, binary.LittleEndian, records); err != nil {
		return fmt.Errorf("dawg: write nodes: %w", err)
	}

	b.logger.Info().Uint32("nodes", hdr.NumNodes).Uint32("words", hdr.NumWords).Msg("saved dawg")
	return nil
}

// copyTruncated fills dst with s, truncating to len(dst) with no
// terminator when s is too long, and leaving the remainder NUL-padded
// (Go's zero value for byte) when s fits.
func copyTruncated(dst []byte, s string) {
	if len(s) >= len(dst) {
		copy(dst, s[:len(dst)])
		return
	}
	copy(dst, s)
}

// buildRecords walks the compressed trie and emits one packed record per
// surviving node, indexed by node number.
func (b *Builder) buildRecords() []uint32 {
	records := make([]uint32, b.diag.NumNodesAfterCompression)
	filled := make([]bool, b.diag.NumNodesAfterCompression)
	b.fillRecords(b.root, records, filled)
	return records
}

func (b *Builder) fillRecords(ref nodeRef, records []uint32, filled []bool) {
	if ref == noRef {
		return
	}
	n := b.n(ref)
	if n.isDuplicate {
		return
	}
	if filled[n.nodeNumber] {
		return
	}

	cur := ref
	for cur != noRef {
		cn := b.n(cur)
		if filled[cn.nodeNumber] {
			break
		}
		records[cn.nodeNumber] = b.packNode(cn)
		filled[cn.nodeNumber] = true
		cur = cn.nextSibling
	}

	cur = ref
	for cur != noRef {
		cn := b.n(cur)
		b.fillRecords(cn.firstChild, records, filled)
		cur = cn.nextSibling
	}
}

func (b *Builder) packNode(n *node) uint32 {
	var childID uint32
	if n.firstChild != noRef {
		childID = uint32(b.n(n.firstChild).nodeNumber)
	}

	rec := childID & childIDMask
	rec |= uint32(n.letter) << letterShift
	if n.isTerminal {
		rec |= terminalBit
	}
	if n.nextSibling == noRef {
		rec |= lastChildBit
	}
	return rec
}
