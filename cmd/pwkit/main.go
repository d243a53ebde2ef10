package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/pwkit/pkg/config"
	"github.com/dmitrymomot/pwkit/pkg/logger"
)

type appConfig struct {
	// BasicEstimator forces the heuristic strength model, standing in for an
	// environment without the entropy engine.
	BasicEstimator bool   `env:"PWKIT_BASIC_ESTIMATOR" envDefault:"false"`
	LogLevel       string `env:"PWKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"PWKIT_LOG_FORMAT" envDefault:"text"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(parseLevel(cfg.LogLevel)),
	)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = runAnalyze(os.Args[2:], cfg, log)
	case "wordlist":
		err = runWordlist(os.Args[2:], log)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error("command failed", logger.Error(err))
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func usage() {
	fmt.Fprint(os.Stderr, `pwkit - password strength analyzer and wordlist generator

Usage:
  pwkit analyze [-password STRING] [-json]
  pwkit wordlist -seeds "alice, rex2004" [-case] [-leet] [-suffixes] [-pairs]
                 [-dates] [-all] [-years 1990-2025] [-max N] [-out FILE]

Environment:
  PWKIT_BASIC_ESTIMATOR=true   force the heuristic strength model
  PWKIT_LOG_LEVEL, PWKIT_LOG_FORMAT
`)
}
