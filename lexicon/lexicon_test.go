package lexicon

import (
	"errors"
	"strings"
	"testing"
)

func TestReadWordsSkipsBlankAndComments(t *testing.T) {
	in := "CAT\n\n# a comment\nDOG\n   \nBAT\n"
	words, err := ReadWords(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"CAT", "DOG", "BAT"}
	if len(words) != len(want) {
		t.Fatalf("got %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestReadWordsTakesFirstTokenOnly(t *testing.T) {
	in := "CAT 3 common\nDOG 1\n"
	words, err := ReadWords(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 || words[0] != "CAT" || words[1] != "DOG" {
		t.Errorf("got %v, want [CAT DOG]", words)
	}
}

func TestReadWordsEmptyInput(t *testing.T) {
	words, err := ReadWords(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 0 {
		t.Errorf("got %v, want empty", words)
	}
}

func TestLoadStopsAtFirstError(t *testing.T) {
	in := "CAT\nBAD\nDOG\n"
	boom := errors.New("boom")
	var added []string
	n, err := Load(strings.NewReader(in), func(w string) error {
		if w == "BAD" {
			return boom
		}
		added = append(added, w)
		return nil
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if n != 1 {
		t.Errorf("Load returned n=%d, want 1", n)
	}
	if len(added) != 1 || added[0] != "CAT" {
		t.Errorf("added = %v, want [CAT]", added)
	}
}

func TestLoadAllSucceed(t *testing.T) {
	in := "CAT\nDOG\nBAT\n"
	var added []string
	n, err := Load(strings.NewReader(in), func(w string) error {
		added = append(added, w)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Load returned n=%d, want 3", n)
	}
	if len(added) != 3 {
		t.Errorf("added = %v, want 3 words", added)
	}
}
