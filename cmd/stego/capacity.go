package main

import (
	"fmt"

	"github.com/spf13/cobra"
	stego "github.com/yyyoichi/stego_lsb"
	"github.com/yyyoichi/stego_lsb/advisor"
)

func newCapacityCmd(a *app) *cobra.Command {
	var input, message, messageFile string
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show how much text an image can hold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _, err := loadImage(input)
			if err != nil {
				return err
			}
			rect := src.Bounds()
			available := stego.Capacity(rect)

			out := cmd.OutOrStdout()
			printField(out, "Image", fmt.Sprintf("%dx%d", rect.Dx(), rect.Dy()))
			printField(out, "Capacity", fmt.Sprintf("%d bits", available))
			if n := a.codec.MaxLen(rect); n >= 0 {
				printField(out, "Max length", fmt.Sprintf("%d characters", n))
			} else {
				printField(out, "Max length", "image too small for any message")
			}

			if !cmd.Flags().Changed("message") && messageFile == "" {
				return nil
			}
			msg, err := readMessage(cmd, message, messageFile)
			if err != nil {
				return err
			}
			required, err := a.codec.Required(msg)
			if err != nil {
				return err
			}
			printField(out, "Required", fmt.Sprintf("%d bits", required))
			if required <= available {
				successColor.Fprintln(out, "The message fits.")
			} else {
				errorColor.Fprintln(out, "The message does not fit.")
			}
			printImageAdvice(out, advisor.AdviseImage(available, required))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "image to inspect")
	cmd.Flags().StringVarP(&message, "message", "m", "", "check whether this message fits")
	cmd.Flags().StringVarP(&messageFile, "message-file", "f", "", "check whether the content of this file fits")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
