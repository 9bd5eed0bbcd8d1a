// Package lexicon reads the plain-text word lists the dawg package's
// Builder is fed from: one word per line, uppercase A-Z only, with '#'
// comment lines. It is thin glue between a text file and Builder.AddWord,
// carrying no design weight of its own.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadWords reads words from r, one per line. Lines starting with '#' are
// comments and skipped; only the first whitespace-delimited token of each
// remaining line is read. Blank lines are skipped. It does not validate
// that words are uppercase A-Z — that is the Builder's job.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			words = append(words, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read: %w", err)
	}
	return words, nil
}

// AddWordFunc adds a single word, matching Builder.AddWord's signature.
type AddWordFunc func(string) error

// Load reads words from r and adds each one via add, stopping at the first
// error add returns.
func Load(r io.Reader, add AddWordFunc) (int, error) {
	words, err := ReadWords(r)
	if err != nil {
		return 0, err
	}
	for i, w := range words {
		if err := add(w); err != nil {
			return i, fmt.Errorf("lexicon: add %q: %w", w, err)
		}
	}
	return len(words), nil
}
