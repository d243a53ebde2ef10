package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/pwkit/pkg/wordlist"
)

func runWordlist(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("wordlist", flag.ExitOnError)
	seedsInput := fs.String("seeds", "", "comma or space separated seed tokens")
	caseVar := fs.Bool("case", false, "emit lowercase, UPPERCASE, and Capitalized variants")
	leet := fs.Bool("leet", false, "emit leetspeak variants")
	suffixes := fs.Bool("suffixes", false, "append common suffixes and year tokens")
	pairs := fs.Bool("pairs", false, "concatenate ordered seed pairs")
	dates := fs.Bool("dates", false, "expand date-like seeds into common formats")
	all := fs.Bool("all", false, "enable every transformation stage")
	yearsInput := fs.String("years", "", "inclusive year range to append, e.g. 1990-2025")
	maxOut := fs.Int("max", 0, "output cap (default 50000)")
	outPath := fs.String("out", "", "write candidates to FILE instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := wordlist.Options{
		CaseVariation: *caseVar,
		Leetspeak:     *leet,
		Suffixes:      *suffixes,
		Pairs:         *pairs,
		Dates:         *dates,
		MaxCandidates: *maxOut,
	}
	if *all {
		enabled := wordlist.AllOptions()
		enabled.MaxCandidates = *maxOut
		opts = enabled
	}

	years, err := wordlist.ParseYearRange(*yearsInput)
	if err != nil {
		return err
	}
	opts.Years = years

	seeds := wordlist.SplitSeeds(*seedsInput)
	result := wordlist.Generate(seeds, opts)
	log.Info("wordlist generated",
		slog.Int("seeds", len(seeds)),
		slog.Int("candidates", len(result.Words)),
		slog.Bool("truncated", result.Truncated),
	)

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := writeWords(out, result.Words); err != nil {
		return fmt.Errorf("write wordlist: %w", err)
	}
	if *outPath != "" {
		log.Info("wordlist saved", slog.String("path", *outPath))
	}
	return nil
}

// writeWords emits one candidate per line, UTF-8, newline-terminated.
func writeWords(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
