// Package quality measures how far an encoded image drifted from its source.
package quality

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/yyyoichi/stego_lsb/internal/lsb"
	"gonum.org/v1/gonum/stat"
)

var ErrBoundsMismatch = errors.New("images have different sizes")

// Window is the side length of the SSIM windows.
const Window = 8

const (
	// luma weights, BT.601
	yr = 0.299
	yg = 0.587
	yb = 0.114

	c1 = (0.01 * 255) * (0.01 * 255)
	c2 = (0.03 * 255) * (0.03 * 255)
)

// Report compares the R, G and B samples of two images of equal size.
type Report struct {
	// MSE is the mean squared error over all R, G and B samples.
	MSE float64
	// PSNR in dB. It is +Inf for identical images.
	PSNR float64
	// SSIM is the mean structural similarity of luma over Window x Window blocks.
	SSIM float64

	ChangedSamples int
	MaxDelta       int
	AlphaChanged   bool
}

// Compare returns the quality report of b against the reference a.
func Compare(a, b image.Image) (Report, error) {
	if a.Bounds().Size() != b.Bounds().Size() {
		return Report{}, fmt.Errorf("%w: %v != %v", ErrBoundsMismatch, a.Bounds().Size(), b.Bounds().Size())
	}
	ba, bb := lsb.NewBuffer(a), lsb.NewBuffer(b)

	var r Report
	var sum float64
	for i := range ba.Pix {
		d := int(ba.Pix[i]) - int(bb.Pix[i])
		if d == 0 {
			continue
		}
		if i%4 == 3 {
			r.AlphaChanged = true
			continue
		}
		r.ChangedSamples++
		sum += float64(d * d)
		r.MaxDelta = max(r.MaxDelta, abs(d))
	}
	if samples := ba.Width * ba.Height * 3; samples > 0 {
		r.MSE = sum / float64(samples)
	}
	r.PSNR = psnr(r.MSE)
	r.SSIM = ssim(luma(ba), luma(bb), ba.Width, ba.Height)
	return r, nil
}

func psnr(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}

func luma(b *lsb.Buffer) []float64 {
	y := make([]float64, b.Width*b.Height)
	for i := range y {
		p := b.Pix[i*4 : i*4+3]
		y[i] = yr*float64(p[0]) + yg*float64(p[1]) + yb*float64(p[2])
	}
	return y
}

func ssim(x, y []float64, w, h int) float64 {
	var total float64
	var count int
	wx := make([]float64, 0, Window*Window)
	wy := make([]float64, 0, Window*Window)
	for y0 := 0; y0 < h; y0 += Window {
		for x0 := 0; x0 < w; x0 += Window {
			wx, wy = wx[:0], wy[:0]
			for yy := y0; yy < min(y0+Window, h); yy++ {
				for xx := x0; xx < min(x0+Window, w); xx++ {
					wx = append(wx, x[yy*w+xx])
					wy = append(wy, y[yy*w+xx])
				}
			}
			total += windowSSIM(wx, wy)
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return total / float64(count)
}

func windowSSIM(x, y []float64) float64 {
	mx, my := stat.Mean(x, nil), stat.Mean(y, nil)
	var vx, vy, cov float64
	if len(x) > 1 {
		vx = stat.Variance(x, nil)
		vy = stat.Variance(y, nil)
		cov = stat.Covariance(x, y, nil)
	}
	return ((2*mx*my + c1) * (2*cov + c2)) /
		((mx*mx + my*my + c1) * (vx + vy + c2))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
