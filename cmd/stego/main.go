package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	stego "github.com/yyyoichi/stego_lsb"
	"github.com/yyyoichi/stego_lsb/advisor"
	"go.uber.org/zap"
)

// app holds the state shared by every subcommand after flag parsing.
type app struct {
	cfg     Config
	logger  *zap.Logger
	codec   *stego.Stego
	advisor advisor.TextAdvisor

	configPath string
	logLevel   string
	seed       int64
	passphrase string
	golay      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{advisor: advisor.Heuristic{}}
	root := &cobra.Command{
		Use:   "stego",
		Short: "Hide text in the least significant bits of an image",
		Long: `Hide a text message in the lowest bit of the red, green and blue
samples of an image, and recover it later. Encoded images are always written
in a lossless format (png, bmp, tiff or qoi).

Examples:
  stego encode -i photo.jpg -o photo.png -m "Coffee at our usual place?"
  stego decode -i photo.png
  stego capacity -i photo.png -m "How long can it be?"
  stego analyze -m "Meeting moved to Friday."`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Int64Var(&a.seed, "shuffle-seed", 0, "scatter the payload in a pseudo-random order derived from this seed")
	root.PersistentFlags().StringVar(&a.passphrase, "passphrase", "", "derive the shuffle seed from a passphrase")
	root.MarkFlagsMutuallyExclusive("shuffle-seed", "passphrase")
	root.PersistentFlags().BoolVar(&a.golay, "golay", false, "protect the payload with Golay(23,12) error correction")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newCapacityCmd(a),
		newAnalyzeCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("shuffle-seed") {
		cfg.Codec.Passphrase = ""
		cfg.Codec.Shuffle = true
		cfg.Codec.Seed = a.seed
	}
	if flags.Changed("passphrase") {
		cfg.Codec.Shuffle = false
		cfg.Codec.Passphrase = a.passphrase
	}
	if flags.Changed("golay") {
		cfg.Codec.Golay = a.golay
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	codec, err := stego.New(cfg.Options()...)
	if err != nil {
		return fmt.Errorf("failed to create codec: %w", err)
	}
	a.cfg, a.logger, a.codec = cfg, logger, codec
	a.logger.Debug("configured",
		zap.String("config", a.configPath),
		zap.Bool("shuffle", cfg.Codec.Shuffle),
		zap.Bool("golay", cfg.Codec.Golay),
	)
	return nil
}
