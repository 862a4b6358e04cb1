package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	stego "github.com/yyyoichi/stego_lsb"
	"github.com/yyyoichi/stego_lsb/imageio"
	"github.com/yyyoichi/stego_lsb/quality"
	"go.uber.org/zap"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		input, output        string
		message, messageFile string
		report               bool
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Hide a message in an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, message, messageFile)
			if err != nil {
				return err
			}
			format, err := outputFormat(output, a.cfg.Output.Format)
			if err != nil {
				return err
			}
			src, inFormat, err := loadImage(input)
			if err != nil {
				return err
			}
			a.logger.Debug("image loaded",
				zap.String("input", input),
				zap.String("format", string(inFormat)),
				zap.Int("width", src.Bounds().Dx()),
				zap.Int("height", src.Bounds().Dy()),
			)

			start := time.Now()
			dst, err := a.codec.Encode(cmd.Context(), src, msg)
			if err != nil {
				var cerr *stego.CapacityError
				if errors.As(err, &cerr) {
					a.logger.Error("message does not fit",
						zap.Int("required_bits", cerr.Required),
						zap.Int("available_bits", cerr.Available),
					)
				}
				return err
			}

			var buf bytes.Buffer
			if err := imageio.Encode(&buf, dst, format); err != nil {
				return fmt.Errorf("failed to encode %s: %w", format, err)
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			a.logger.Info("message encoded",
				zap.String("output", output),
				zap.String("format", string(format)),
				zap.Int("characters", utf8.RuneCountInString(msg)),
				zap.Duration("elapsed", time.Since(start)),
			)

			out := cmd.OutOrStdout()
			successColor.Fprintf(out, "Message encoded into %s\n", output)
			if report {
				r, err := quality.Compare(src, dst)
				if err != nil {
					return err
				}
				printReport(out, r)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "source image (png, jpeg, gif, bmp, tiff, webp)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination image (png, bmp, tiff or qoi)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to hide")
	cmd.Flags().StringVarP(&messageFile, "message-file", "f", "", "read the message from a file")
	cmd.Flags().BoolVar(&report, "report", false, "print a quality report of the encoded image")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
