package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/corpusword/dawg"
)

func runQuery(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	dawgPath := fs.String("dawg", "", "path to the .lxd file")
	reverse := fs.Bool("reverse", false, "check IsReversePartWord instead of IsWord")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dawgPath == "" {
		fs.Usage()
		return fmt.Errorf("dawgctl query: -dawg is required")
	}

	r, err := dawg.Open(*dawgPath)
	if err != nil {
		return fmt.Errorf("open dawg: %w", err)
	}
	defer r.Close()

	words := fs.Args()
	if len(words) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if w := strings.TrimSpace(scanner.Text()); w != "" {
				words = append(words, w)
			}
		}
	}

	for _, w := range words {
		var ok bool
		if *reverse {
			ok = r.IsReversePartWord(w)
		} else {
			ok = r.IsWord(w)
		}
		fmt.Printf("%s\t%t\n", w, ok)
	}
	return nil
}
