package rotate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kurtisc/bit-rotate/config"
)

var (
	cfg = config.DefaultConfig()

	configFile  string
	logLevel    = zapcore.InfoLevel.String()
	printConfig bool
)

func init() {
	setFlags(Cmd)
}

func setFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&configFile, "config", "c", "", "optional config file (toml, yaml or json)")
	flags.UintVar(&cfg.BufferSize, "buffer-size", cfg.BufferSize, "I/O buffer size in bytes, a power of 2")
	flags.BoolVar(&cfg.Verify, "verify", cfg.Verify, "rotate the output back and compare digests with the input")
	flags.BoolVar(&cfg.SkipSpaceCheck, "skip-space-check", cfg.SkipSpaceCheck, "skip the destination free-space check")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&printConfig, "print-config", false, "print the effective config and exit")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if configFile != "" {
		vip := viper.New()
		vip.SetConfigFile(configFile)
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		fileCfg := config.DefaultConfig()
		if err := vip.Unmarshal(fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}

		ensureCLIFlags(cmd, fileCfg)
	}

	return cfg, cfg.Validate()
}

// ensureCLIFlags folds config-file values into cfg, keeping cli args higher
// priority than the config file.
func ensureCLIFlags(cmd *cobra.Command, fileCfg *config.Config) {
	flags := cmd.Flags()

	if !flags.Changed("buffer-size") {
		cfg.BufferSize = fileCfg.BufferSize
	}
	if !flags.Changed("verify") {
		cfg.Verify = fileCfg.Verify
	}
	if !flags.Changed("skip-space-check") {
		cfg.SkipSpaceCheck = fileCfg.SkipSpaceCheck
	}
}

func buildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapCfg.Build()
}
