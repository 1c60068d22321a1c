package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/dirsimilar/internal/platform"
	"github.com/sdejongh/dirsimilar/pkg/config"
	"github.com/sdejongh/dirsimilar/pkg/engine"
	"github.com/sdejongh/dirsimilar/pkg/logging"
	"github.com/sdejongh/dirsimilar/pkg/output"
)

// CompareFlags holds compare command flags
type CompareFlags struct {
	Threshold float64
	BlockSize int
	Output    string
	Progress  bool
	Summary   bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [DIR_A DIR_B]",
		Short: "Compare the files of two directories",
		Long: `Compare the top-level regular files of two directories.

Every file of DIR_A is compared with every file of DIR_B. Pairs with the same
SHA-256 digest are reported as identical; other pairs whose byte overlap is at
least the threshold percentage are reported as similar. File names present on
only one side are listed afterwards.

Without arguments the directories and the threshold are asked interactively.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected two directories or none, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: runCompare,
	}

	cmd.Flags().Float64VarP(&compareFlags.Threshold, "threshold", "t", 0, "similarity threshold in percent (default from config: 80)")
	cmd.Flags().IntVar(&compareFlags.BlockSize, "block-size", 0, "read block size in bytes (default from config: 4096)")
	cmd.Flags().StringVarP(&compareFlags.Output, "output", "o", "", "output format: human, json")
	cmd.Flags().BoolVar(&compareFlags.Progress, "progress", false, "show a progress bar on stderr")
	cmd.Flags().BoolVar(&compareFlags.Summary, "summary", false, "print a summary after the findings")

	// Logging flags
	cmd.Flags().StringVar(&compareFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&compareFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.Flags().StringVar(&compareFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.Load(globalFlags.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	source := inputSource(cmd, args, cfg)
	req, err := source.Inputs()
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg.Logging, globalFlags.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	opts := engine.Options{
		BlockSize: cfg.Compare.BlockSize,
		Formatter: output.New(cfg.Output.Format, cfg.Output.Summary),
		Writer:    cmd.OutOrStdout(),
		Logger:    logger,
	}
	if cfg.Output.Progress && output.IsTerminal(os.Stderr) {
		opts.Progress = output.NewProgressBar(os.Stderr)
	}

	_, err = engine.New(opts).Run(ctx, req)
	return err
}

// inputSource picks positional arguments or the interactive prompt
func inputSource(cmd *cobra.Command, args []string, cfg *config.Config) InputSource {
	if len(args) == 2 {
		return argsSource{
			dirA:      platform.NormalizePath(args[0]),
			dirB:      platform.NormalizePath(args[1]),
			threshold: cfg.Compare.Threshold,
		}
	}

	prompt := NewPromptSource(cmd.InOrStdin(), cmd.ErrOrStderr())
	if cmd.Flags().Changed("threshold") {
		prompt.AskThreshold = false
		prompt.Threshold = cfg.Compare.Threshold
	}
	return prompt
}

// applyFlagsToConfig overrides config values with explicitly set flags
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.Compare.Threshold = compareFlags.Threshold
	}
	if flags.Changed("block-size") {
		cfg.Compare.BlockSize = compareFlags.BlockSize
	}
	if flags.Changed("output") {
		cfg.Output.Format = compareFlags.Output
	}
	if flags.Changed("progress") {
		cfg.Output.Progress = compareFlags.Progress
	}
	if flags.Changed("summary") {
		cfg.Output.Summary = compareFlags.Summary
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = compareFlags.LogFile
		cfg.Logging.Enabled = true
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = compareFlags.LogFormat
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = compareFlags.LogLevel
	}
}

// createLogger creates a logger based on configuration
func createLogger(cfg config.LoggingConfig, verbose bool) (logging.Logger, error) {
	if !cfg.Enabled && !verbose {
		return logging.NewNullLogger(), nil
	}

	// Parse log format
	var format logging.Format
	switch cfg.Format {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	level := logging.ParseLevel(cfg.Level)
	if verbose {
		level = logging.DebugLevel
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.File,
		Writer:     os.Stderr,
		Format:     format,
		Level:      level,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
	})
}
