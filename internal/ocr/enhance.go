package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// Enhancer prepares a card photo for recognition: grayscale, percentile
// contrast stretch, a 3x3 sharpen pass, and an optional upscale. Phone shots
// of laminated cards are low-contrast and slightly soft, and the engine's
// accuracy on the small MRZ glyphs depends heavily on this pass.
type Enhancer struct {
	// UpscaleFactor multiplies both dimensions before handing the frame to
	// the engine; 1 disables scaling.
	UpscaleFactor int
}

// Enhance runs the full preparation chain and returns the processed frame.
func (e *Enhancer) Enhance(src image.Image) *image.Gray {
	gray := toGray(src)
	gray = stretchContrast(gray)
	gray = sharpen(gray)
	if e.UpscaleFactor > 1 {
		gray = upscale(gray, e.UpscaleFactor)
	}
	return gray
}

// EncodePNG renders the frame the way engines expect it.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

func toGray(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	xdraw.Draw(dst, b, src, b.Min, xdraw.Src)
	return dst
}

// stretchContrast remaps the 2nd..98th luminance percentiles onto the full
// range. Clipping the tails keeps isolated specks from wasting the range.
func stretchContrast(src *image.Gray) *image.Gray {
	var hist [256]int
	for _, px := range src.Pix {
		hist[px]++
	}
	total := len(src.Pix)
	if total == 0 {
		return src
	}

	lo, hi := percentile(hist[:], total, 0.02), percentile(hist[:], total, 0.98)
	if hi <= lo {
		return src
	}

	dst := image.NewGray(src.Bounds())
	scale := 255.0 / float64(hi-lo)
	for i, px := range src.Pix {
		v := float64(int(px)-lo) * scale
		dst.Pix[i] = clampByte(v)
	}
	return dst
}

func percentile(hist []int, total int, p float64) int {
	target := int(float64(total) * p)
	acc := 0
	for v, n := range hist {
		acc += n
		if acc >= target {
			return v
		}
	}
	return 255
}

// sharpen applies the classic 3x3 kernel with center 9 and -1 neighbors.
func sharpen(src *image.Gray) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	copy(dst.Pix, src.Pix)

	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			sum := 9 * int(src.GrayAt(x, y).Y)
			sum -= int(src.GrayAt(x-1, y-1).Y) + int(src.GrayAt(x, y-1).Y) + int(src.GrayAt(x+1, y-1).Y)
			sum -= int(src.GrayAt(x-1, y).Y) + int(src.GrayAt(x+1, y).Y)
			sum -= int(src.GrayAt(x-1, y+1).Y) + int(src.GrayAt(x, y+1).Y) + int(src.GrayAt(x+1, y+1).Y)
			dst.Pix[dst.PixOffset(x, y)] = clampByte(float64(sum))
		}
	}
	return dst
}

func upscale(src *image.Gray, factor int) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
