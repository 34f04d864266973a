// Package main provides the CLI entry point for xlsx2json.
package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsx2json-go/pkg/xlsx2json"
	"go.uber.org/zap"
)

var errOutputWithManyFiles = errors.New("--output can only be used with a single file")

var (
	outputPath   string
	roundNumbers bool
	configPath   string
	logLevel     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsx2json [input.xlsx]",
		Short: "Convert every sheet of an Excel workbook into one JSON document",
		Long: `xlsx2json reads all sheets of a workbook and writes a JSON object keyed by
sheet name, holding each sheet's header labels and rows. Empty cells
become null.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input with .json extension)")
	rootCmd.Flags().BoolVar(&roundNumbers, "round", false, "Round numeric cells to integers")

	rootCmd.AddCommand(newRoundCmd())
	return rootCmd
}

func newRoundCmd() *cobra.Command {
	var roundOutput string

	cmd := &cobra.Command{
		Use:   "round <file.json>...",
		Short: "Round numeric cells of converted JSON documents to integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if roundOutput != "" && len(args) > 1 {
				return errOutputWithManyFiles
			}
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			converter := xlsx2json.NewConverter(options(cfg), log)
			for _, path := range args {
				if _, err := os.Stat(path); os.IsNotExist(err) {
					log.Warn(xlsx2json.ErrFileNotFound.Error(), zap.String("path", path))
					continue
				}
				target := path
				if roundOutput != "" {
					target = roundOutput
				}
				if _, err := converter.RoundFile(path, target); err != nil {
					log.Error("round failed", zap.String("path", path), zap.Error(err))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&roundOutput, "output", "o", "", "Output file path (default: rewrite in place)")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputPath
	}
	if cmd.Flags().Changed("round") {
		cfg.RoundNumbers = roundNumbers
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutputPath(cfg.Input)
	}

	// Failures are reported on the console only.
	xlsx2json.NewConverter(options(cfg), log).Run(cfg.Input, cfg.Output)
	return nil
}

// setup loads the config file and builds the console logger.
func setup(cmd *cobra.Command) (*AppCfg, *zap.Logger, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	log, err := NewLogger(cmd.OutOrStdout(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func options(cfg *AppCfg) xlsx2json.Options {
	return xlsx2json.Options{
		RoundNumbers: cfg.RoundNumbers,
		NAValues:     cfg.NAValues,
	}
}

// defaultOutputPath replaces the input's extension with .json.
func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
}
