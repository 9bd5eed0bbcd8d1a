package dawg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

const (
	rootNodeID        = 0
	forwardRootNodeID = 1
	reverseRootNodeID = 2
	minNumNodes       = 3
)

// Reader answers membership queries against a DAWG file produced by
// Builder.SaveAsDawg. Node 0 is the root, node 1 is the forward-word
// marker (its child index is the entry point for forward words), and node
// 2 is the reverse-suffix marker (its child index is the entry point for
// reverse suffixes) — a positional contract baked into the file format.
type Reader struct {
	header Header
	nodes  []uint32

	data    []byte
	mmapped bool

	numReversePartWords uint32
}

// Open loads the DAWG file at path, memory-mapping it where supported and
// falling back to a buffered read otherwise, validates its header and
// node count, and recounts words and reverse suffixes from the node graph
// to cross-check the header. The returned Reader owns its node buffer for
// as long as it is in use; call Close when done with it.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dawg: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("dawg: stat %s: %w", path, err)
	}
	size := info.Size()
	if size < int64(headerSize()) {
		return nil, fmt.Errorf("dawg: %s shorter than header: %w", path, ErrCorruptFile)
	}

	data, mmapped, err := mmapFile(f, size)
	if err != nil {
		return nil, fmt.Errorf("dawg: load %s: %w", path, err)
	}

	r, err := newReader(data)
	if err != nil {
		if mmapped {
			_ = munmapData(data)
		}
		return nil, err
	}
	r.mmapped = mmapped
	return r, nil
}

func newReader(data []byte) (*Reader, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	expected := int64(headerSize()) + int64(hdr.NumNodes)*4
	if int64(len(data)) < expected {
		return nil, fmt.Errorf("dawg: file shorter than header + %d nodes: %w", hdr.NumNodes, ErrCorruptFile)
	}
	if hdr.NumNodes < minNumNodes {
		return nil, fmt.Errorf("dawg: %d nodes is below the minimum of %d: %w", hdr.NumNodes, minNumNodes, ErrCorruptFile)
	}

	nodeBytes := data[headerSize():expected]
	nodes := make([]uint32, hdr.NumNodes)
	for i := range nodes {
		nodes[i] = binary.LittleEndian.Uint32(nodeBytes[i*4 : i*4+4])
	}

	r := &Reader{header: hdr, nodes: nodes, data: data}

	numWords := r.countFragments(recordChildID(r.nodes[forwardRootNodeID]))
	if numWords != hdr.NumWords {
		return nil, fmt.Errorf("dawg: recounted %d words, header says %d: %w", numWords, hdr.NumWords, ErrCorruptFile)
	}
	r.numReversePartWords = r.countFragments(recordChildID(r.nodes[reverseRootNodeID]))

	return r, nil
}

func parseHeader(data []byte) (Header, error) {
	var hdr Header
	if err := binary.Read(bytes.NewReader(data[:headerSize()]), binary.LittleEndian, &hdr); err != nil {
		return Header{}, fmt.Errorf("dawg: parse header: %w", err)
	}
	return hdr, nil
}

func recordChildID(rec uint32) uint32  { return rec & childIDMask }
func recordLetter(rec uint32) byte     { return byte(rec >> letterShift) }
func recordIsTerminal(rec uint32) bool { return rec&terminalBit != 0 }
func recordIsLast(rec uint32) bool     { return rec&lastChildBit != 0 }

// countFragments counts terminal nodes reachable from nodeID's subtree,
// following childID then falling through to the next sibling while
// is_last_child is false. A node id of 0, or any id at or beyond the node
// array length, terminates the recursion.
func (r *Reader) countFragments(nodeID uint32) uint32 {
	if nodeID == 0 || nodeID >= uint32(len(r.nodes)) {
		return 0
	}
	rec := r.nodes[nodeID]

	var count uint32
	if recordIsTerminal(rec) {
		count++
	}
	count += r.countFragments(recordChildID(rec))
	if !recordIsLast(rec) {
		count += r.countFragments(nodeID + 1)
	}
	return count
}

// isWordFragment walks the sibling chain starting at nodeID, matching one
// letter of s per node visited; it never scans past the first match (or
// the first is_last_child sibling). An empty s never matches.
func (r *Reader) isWordFragment(s string, nodeID uint32, matched int) bool {
	if len(s) == 0 {
		return false
	}
	for {
		if nodeID == 0 || nodeID >= uint32(len(r.nodes)) {
			return false
		}
		rec := r.nodes[nodeID]
		if recordLetter(rec) == s[matched] {
			matched++
			if matched == len(s) {
				return recordIsTerminal(rec)
			}
			return r.isWordFragment(s, recordChildID(rec), matched)
		}
		if recordIsLast(rec) {
			return false
		}
		nodeID++
	}
}

// IsWord reports whether w is a complete forward word in the lexicon.
func (r *Reader) IsWord(w string) bool {
	return r.isWordFragment(w, recordChildID(r.nodes[forwardRootNodeID]), 0)
}

// IsReversePartWord reports whether w is a non-empty suffix of some
// lexicon word written backwards (for "CATS": "STAC", "TAC", "AC", "C").
func (r *Reader) IsReversePartWord(w string) bool {
	return r.isWordFragment(w, recordChildID(r.nodes[reverseRootNodeID]), 0)
}

// NumReversePartWords returns the number of reverse suffixes recorded in
// the file, counted once at load time.
func (r *Reader) NumReversePartWords() uint32 {
	return r.numReversePartWords
}

// Header returns a copy of the file's header.
func (r *Reader) Header() Header {
	return r.header
}

// Close releases the reader's backing storage (unmapping it if it was
// memory-mapped). The reader must not be used afterwards.
func (r *Reader) Close() error {
	if r.mmapped {
		err := munmapData(r.data)
		r.data = nil
		r.mmapped = false
		return err
	}
	return nil
}
