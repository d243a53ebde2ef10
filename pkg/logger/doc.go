// Package logger is a small factory over log/slog with functional options
// for format, level, output destination, and static attributes.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("app", "pwkit")),
//	)
//	log.Info("wordlist generated", slog.Int("candidates", n))
//
// The attribute helpers in attr.go keep common keys consistent across call
// sites.
package logger
