package dawg

import (
	"bytes"
	"errors"
	"testing"
)

func TestSaveBeforeCompressionIsError(t *testing.T) {
	b := NewBuilder()
	if err := b.AddWord("CAT"); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := b.SaveAsDawg(&buf, "X"); !errors.Is(err, ErrPrecondition) {
		t.Errorf("got %v, want ErrPrecondition", err)
	}
}

func TestSaveAfterFirstCompressStepIsError(t *testing.T) {
	b := NewBuilder()
	if err := b.AddWord("CAT"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddWord("DOG"); err != nil {
		t.Fatal(err)
	}
	// Take exactly one step; with only two distinct words there may still
	// be more than one first-child, so state should remain COMPRESSING.
	done, err := b.Compress()
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Skip("compression finished in a single step for this input")
	}
	var buf bytes.Buffer
	if err := b.SaveAsDawg(&buf, "X"); !errors.Is(err, ErrPrecondition) {
		t.Errorf("got %v, want ErrPrecondition", err)
	}
}

func TestLexiconNameTruncation(t *testing.T) {
	b := NewBuilder()
	if err := b.AddWord("CAT"); err != nil {
		t.Fatal(err)
	}
	compressAll(t, b)

	long := "THIS NAME IS DEFINITELY LONGER THAN THIRTY TWO BYTES"
	var buf bytes.Buffer
	if err := b.SaveAsDawg(&buf, long); err != nil {
		t.Fatal(err)
	}
	hdr, err := parseHeader(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if string(hdr.LexiconName[:]) != long[:lexiconNameSize] {
		t.Errorf("LexiconName = %q, want %q", hdr.LexiconName, long[:lexiconNameSize])
	}
}

func TestLexiconNameNulPadded(t *testing.T) {
	b := NewBuilder()
	if err := b.AddWord("CAT"); err != nil {
		t.Fatal(err)
	}
	compressAll(t, b)

	var buf bytes.Buffer
	if err := b.SaveAsDawg(&buf, "SHORT"); err != nil {
		t.Fatal(err)
	}
	hdr, err := parseHeader(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if hdr.LexiconName[5] != 0 {
		t.Errorf("LexiconName[5] = %d, want 0 (NUL pad)", hdr.LexiconName[5])
	}
}

func TestHeaderSizeField(t *testing.T) {
	b := NewBuilder()
	if err := b.AddWord("CAT"); err != nil {
		t.Fatal(err)
	}
	compressAll(t, b)

	var buf bytes.Buffer
	if err := b.SaveAsDawg(&buf, "X"); err != nil {
		t.Fatal(err)
	}
	hdr, err := parseHeader(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Size != headerSize() {
		t.Errorf("Header.Size = %d, want %d", hdr.Size, headerSize())
	}
	if hdr.Size != 64 {
		t.Errorf("Header.Size = %d, want 64 per spec layout", hdr.Size)
	}
}
