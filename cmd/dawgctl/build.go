package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corpusword/dawg"
	"github.com/corpusword/dawg/lexicon"
)

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	lexiconPath := fs.String("lexicon", "", "path to the text lexicon (one word per line, '#' comments)")
	outPath := fs.String("out", "", "path to write the .lxd file")
	name := fs.String("name", "LEXICON", "lexicon name recorded in the file header")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *lexiconPath == "" || *outPath == "" {
		fs.Usage()
		return fmt.Errorf("dawgctl build: -lexicon and -out are required")
	}

	log, err := newLogger(*logLevel)
	if err != nil {
		return err
	}
	logger = log

	f, err := os.Open(*lexiconPath)
	if err != nil {
		return fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	b := dawg.NewBuilder(dawg.WithLogger(logger))
	added, err := lexicon.Load(f, b.AddWord)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}
	logger.Info().Int("words", added).Msg("lexicon loaded")

	for done := false; !done; {
		done, err = b.Compress()
		if err != nil {
			return fmt.Errorf("compress: %w", err)
		}
	}

	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := b.SaveAsDawg(out, *name); err != nil {
		return fmt.Errorf("save dawg: %w", err)
	}

	diag := b.Diagnostics()
	fmt.Printf("wrote %s: %d words, %d nodes\n", *outPath, diag.NumWords, diag.NumNodesAfterCompression)
	return nil
}
