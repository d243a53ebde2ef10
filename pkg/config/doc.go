// Package config loads configuration from environment variables into
// struct-tagged Go types.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file in the working directory is loaded once per process (its
// absence is not an error), then the environment is parsed into the supplied
// struct using `env` field tags.
//
//	type AppConfig struct {
//	    BasicEstimator bool   `env:"PWKIT_BASIC_ESTIMATOR" envDefault:"false"`
//	    LogLevel       string `env:"PWKIT_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// MustLoad panics on failure for configuration the process cannot start
// without.
package config
