// Package ascii turns images into text sprite frames.
//
// The pipeline is: grayscale, Lanczos resize to a square, a 3x3
// edge-detection kernel, a fixed threshold, optional thinning with a 3x3
// minimum filter, and finally one character per pixel. Lit pixels take the
// next character of Charset in row-major order; dark pixels are spaces.
package ascii

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// Charset is cycled through for lit pixels.
	Charset = `_/\|-oO!U`

	// DefaultSize is the edge length of the output frame.
	DefaultSize = 32

	threshold = 50
)

var edgeKernel = [9]float64{
	-1, -1, -1,
	-1, 8, -1,
	-1, -1, -1,
}

// Options controls a conversion.
type Options struct {
	// Size is the output width and height in characters. <= 0 means DefaultSize.
	Size int
	// Thin erodes edges with a 3x3 minimum filter before rendering.
	Thin bool
}

// gray is a row-major 8-bit image.
type gray struct {
	w, h int
	pix  []uint8
}

func newGray(w, h int) *gray {
	return &gray{w: w, h: h, pix: make([]uint8, w*h)}
}

// grayFrom takes the red channel of an image already reduced to grayscale.
func grayFrom(img *image.NRGBA) *gray {
	b := img.Bounds()
	g := newGray(b.Dx(), b.Dy())
	for y := 0; y < g.h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < g.w; x++ {
			g.set(x, y, row[x*4])
		}
	}
	return g
}

func (g *gray) at(x, y int) uint8 { return g.pix[y*g.w+x] }

func (g *gray) set(x, y int, v uint8) { g.pix[y*g.w+x] = v }

// ConvertFile decodes the image at path and converts it.
func ConvertFile(path string, opts Options) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image %s: %w", path, err)
	}
	return Convert(img, opts), nil
}

// Convert renders img as a Size x Size text frame. Rows are joined with
// "\n" without a trailing newline.
func Convert(img image.Image, opts Options) string {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}

	g := findEdges(img, size)
	for i, p := range g.pix {
		if p > threshold {
			g.pix[i] = 255
		} else {
			g.pix[i] = 0
		}
	}
	if opts.Thin {
		g = minFilter(g)
	}

	return render(g)
}

// findEdges reduces img to a size x size grayscale square and applies the
// kernel [-1 -1 -1; -1 8 -1; -1 -1 -1]. Border pixels keep their resized
// value instead of the edge-replicated convolution.
func findEdges(img image.Image, size int) *gray {
	if img.Bounds().Empty() {
		return newGray(size, size)
	}
	small := imaging.Resize(imaging.Grayscale(img), size, size, imaging.Lanczos)
	resized := grayFrom(small)
	edges := grayFrom(imaging.Convolve3x3(small, edgeKernel, nil))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				edges.set(x, y, resized.at(x, y))
			}
		}
	}
	return edges
}

// minFilter takes the minimum of each 3x3 neighbourhood, replicating edges.
func minFilter(src *gray) *gray {
	dst := newGray(src.w, src.h)
	for y := 0; y < src.h; y++ {
		for x := 0; x < src.w; x++ {
			m := uint8(255)
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					if v := src.at(clampIndex(x+kx, src.w), clampIndex(y+ky, src.h)); v < m {
						m = v
					}
				}
			}
			dst.set(x, y, m)
		}
	}
	return dst
}

func render(g *gray) string {
	charset := []rune(Charset)
	next := 0

	lines := make([]string, g.h)
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.Reset()
		for x := 0; x < g.w; x++ {
			if g.at(x, y) != 0 {
				b.WriteRune(charset[next%len(charset)])
				next++
			} else {
				b.WriteByte(' ')
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
