package stego

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/yyyoichi/stego_lsb/imageio"
)

// EncodeStream reads an image container from r, hides message in it and
// writes the result to w in format. format must be lossless (see imageio.Lossless);
// nothing is written on failure.
func (s *Stego) EncodeStream(ctx context.Context, r io.Reader, w io.Writer, message string, format imageio.Format) error {
	if !imageio.Lossless(format) {
		return fmt.Errorf("%w: %s", imageio.ErrLossyFormat, format)
	}
	src, _, err := imageio.Decode(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageLoad, err)
	}
	dst, err := s.Encode(ctx, src, message)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := imageio.Encode(&buf, dst, format); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// DecodeStream reads an image container from r and recovers its message.
func (s *Stego) DecodeStream(ctx context.Context, r io.Reader) (string, error) {
	src, _, err := imageio.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageLoad, err)
	}
	return s.Decode(ctx, src)
}

// EncodeBytes hides message in the image container src and returns PNG bytes.
func (s *Stego) EncodeBytes(ctx context.Context, src []byte, message string) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.EncodeStream(ctx, bytes.NewReader(src), &buf, message, imageio.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes recovers the message from the image container src.
func (s *Stego) DecodeBytes(ctx context.Context, src []byte) (string, error) {
	return s.DecodeStream(ctx, bytes.NewReader(src))
}
