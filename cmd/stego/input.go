package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/spf13/cobra"
	stego "github.com/yyyoichi/stego_lsb"
	"github.com/yyyoichi/stego_lsb/imageio"
)

// readMessage returns --message, or the content of --message-file without
// trailing line breaks.
func readMessage(cmd *cobra.Command, message, file string) (string, error) {
	switch {
	case cmd.Flags().Changed("message") && file != "":
		return "", errors.New("use either --message or --message-file")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read message file: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	case cmd.Flags().Changed("message"):
		return message, nil
	}
	return "", errors.New("a message is required: use --message or --message-file")
}

func loadImage(path string) (image.Image, imageio.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", stego.ErrImageLoad, err)
	}
	defer f.Close()
	img, format, err := imageio.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", stego.ErrImageLoad, path, err)
	}
	return img, format, nil
}

// outputFormat picks the container for path. Unknown extensions fall back to
// the configured format; lossy extensions are refused.
func outputFormat(path string, fallback imageio.Format) (imageio.Format, error) {
	format, err := imageio.FormatFromPath(path)
	if err != nil {
		return fallback, nil
	}
	if !imageio.Lossless(format) {
		return "", fmt.Errorf("refusing to write %s: %w: save as .png, .bmp, .tiff or .qoi", path, imageio.ErrLossyFormat)
	}
	return format, nil
}
