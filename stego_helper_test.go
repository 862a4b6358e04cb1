package stego

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/stego_lsb/imageio"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, noiseImage(20, 20, 5)))
	return buf.Bytes()
}

func TestEncodeBytes(t *testing.T) {
	ctx := context.Background()
	s, err := New()
	require.NoError(t, err)

	out, err := s.EncodeBytes(ctx, pngBytes(t), "over the wire")
	require.NoError(t, err)
	_, format, err := imageio.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, imageio.PNG, format)

	decoded, err := s.DecodeBytes(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, "over the wire", decoded)
}

func TestEncodeStreamFormats(t *testing.T) {
	ctx := context.Background()
	s, err := New()
	require.NoError(t, err)
	for _, f := range []imageio.Format{imageio.PNG, imageio.BMP, imageio.TIFF, imageio.QOI} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			src := solidImage(16, 16, color.NRGBA{0x33, 0x66, 0x99, 0xff})
			var in bytes.Buffer
			require.NoError(t, png.Encode(&in, src))

			require.NoError(t, s.EncodeStream(ctx, &in, &buf, "lossless", f))
			decoded, err := s.DecodeStream(ctx, &buf)
			require.NoError(t, err)
			assert.Equal(t, "lossless", decoded)
		})
	}
}

func TestEncodeStreamTranslucent(t *testing.T) {
	ctx := context.Background()
	s, err := New()
	require.NoError(t, err)
	src := solidImage(20, 20, color.NRGBA{0xc9, 0x65, 0x33, 0x80})
	src.SetNRGBA(1, 0, color.NRGBA{0xc9, 0x65, 0x33, 0x00})
	for _, f := range []imageio.Format{imageio.PNG, imageio.BMP, imageio.TIFF, imageio.QOI} {
		t.Run(string(f), func(t *testing.T) {
			var in, out bytes.Buffer
			require.NoError(t, png.Encode(&in, src))
			err := s.EncodeStream(ctx, &in, &out, "see-through", f)
			if f == imageio.QOI {
				assert.True(t, errors.Is(err, imageio.ErrLossyFormat), "got %v", err)
				assert.Zero(t, out.Len())
				return
			}
			require.NoError(t, err)
			decoded, err := s.DecodeStream(ctx, &out)
			require.NoError(t, err)
			assert.Equal(t, "see-through", decoded)
		})
	}
}

func TestEncodeStreamRejectsLossy(t *testing.T) {
	s, _ := New()
	var out bytes.Buffer
	err := s.EncodeStream(context.Background(), bytes.NewReader(pngBytes(t)), &out, "x", imageio.JPEG)
	assert.True(t, errors.Is(err, imageio.ErrLossyFormat))
	assert.Zero(t, out.Len())
}

func TestStreamImageLoadError(t *testing.T) {
	ctx := context.Background()
	s, _ := New()
	_, err := s.EncodeBytes(ctx, []byte("definitely not an image"), "x")
	assert.True(t, errors.Is(err, ErrImageLoad))
	_, err = s.DecodeBytes(ctx, nil)
	assert.True(t, errors.Is(err, ErrImageLoad))
}

func TestEncodeStreamNoPartialOutput(t *testing.T) {
	s, _ := New()
	var out bytes.Buffer
	long := string(bytes.Repeat([]byte("x"), 200))
	err := s.EncodeStream(context.Background(), bytes.NewReader(pngBytes(t)), &out, long, imageio.PNG)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Zero(t, out.Len())
}

func TestJPEGRecompressionLosesMessage(t *testing.T) {
	ctx := context.Background()
	encoded, err := Encode(ctx, solidImage(32, 32, color.NRGBA{0x80, 0x80, 0x80, 0xff}), "fragile")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, encoded, &jpeg.Options{Quality: 90}))
	s, _ := New()
	decoded, err := s.DecodeStream(ctx, &buf)
	require.NoError(t, err)
	assert.NotEqual(t, "fragile", decoded)
}
