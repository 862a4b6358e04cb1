package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDecodeCmd(a *app) *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Recover a hidden message from an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, format, err := loadImage(input)
			if err != nil {
				return err
			}
			msg, err := a.codec.Decode(cmd.Context(), src)
			if err != nil {
				return err
			}
			a.logger.Debug("image decoded",
				zap.String("input", input),
				zap.String("format", string(format)),
				zap.Bool("found", msg != ""),
			)

			out := cmd.OutOrStdout()
			if msg == "" {
				warnColor.Fprintln(out, "No hidden message detected in this image.")
				return nil
			}
			if output != "" {
				if err := os.WriteFile(output, []byte(msg), 0o644); err != nil {
					return fmt.Errorf("failed to write message: %w", err)
				}
				successColor.Fprintf(out, "Hidden message written to %s\n", output)
				return nil
			}
			successColor.Fprintln(out, "Hidden message found:")
			fmt.Fprintln(out, msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "encoded image")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the message to a file instead of stdout")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
