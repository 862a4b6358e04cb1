package main

import (
	"github.com/spf13/cobra"
	stego "github.com/yyyoichi/stego_lsb"
	"github.com/yyyoichi/stego_lsb/advisor"
	"go.uber.org/zap"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var input, message, messageFile string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Rate how well a message will hide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, message, messageFile)
			if err != nil {
				return err
			}
			analysis, err := a.advisor.Analyze(cmd.Context(), msg)
			if err != nil {
				return err
			}
			a.logger.Debug("message analyzed", zap.Int("score", analysis.Score))

			out := cmd.OutOrStdout()
			printAnalysis(out, analysis)
			if input == "" {
				return nil
			}

			src, _, err := loadImage(input)
			if err != nil {
				return err
			}
			required, err := a.codec.Required(msg)
			if err != nil {
				return err
			}
			printImageAdvice(out, advisor.AdviseImage(stego.Capacity(src.Bounds()), required))
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to analyze")
	cmd.Flags().StringVarP(&messageFile, "message-file", "f", "", "read the message from a file")
	cmd.Flags().StringVarP(&input, "input", "i", "", "also rate this image as a carrier")
	return cmd
}
