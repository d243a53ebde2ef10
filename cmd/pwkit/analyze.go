package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/dmitrymomot/pwkit/pkg/strength"
)

func runAnalyze(args []string, cfg appConfig, log *slog.Logger) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	password := fs.String("password", "", "password to analyze (prompted without echo if omitted)")
	asJSON := fs.Bool("json", false, "print the verdict as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []strength.Option
	if cfg.BasicEstimator {
		opts = append(opts, strength.WithBasicOnly())
	}
	est := strength.New(opts...)
	log.Debug("estimator ready", slog.Bool("advanced", est.Advanced()))

	pw := *password
	if pw == "" {
		var err error
		if pw, err = promptPassword(); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	verdict, err := est.Estimate(pw)
	if err != nil {
		// A mid-run estimation failure means a broken scoring engine; report
		// it without taking the session down.
		return fmt.Errorf("estimate: %w", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(verdict)
	}

	fmt.Printf("score: %d/100\n", verdict.Score)
	fmt.Printf("label: %s\n", verdict.Label)
	for _, hint := range verdict.Hints {
		fmt.Printf("  - %s\n", hint)
	}
	return nil
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		// Piped input: read one line from stdin.
		var line string
		if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
			return "", err
		}
		return line, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := terminal.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
