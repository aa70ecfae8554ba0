/*
Copyright 2024 The CaptionHub Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package imgproc

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ErrUnknownFilter is returned for filter names outside Filters().
var ErrUnknownFilter = errors.New("unknown filter")

var filterNames = []string{
	"original",
	"grayscale",
	"sepia",
	"negative",
	"blur",
	"contour",
	"emboss",
	"edge_enhance",
	"sharpen",
	"high_contrast",
	"vivid",
	"warm",
	"cool",
}

// Filters lists the available filter names.
func Filters() []string {
	out := make([]string, len(filterNames))
	copy(out, filterNames)
	return out
}

// IsFilter reports whether name is a known filter.
func IsFilter(name string) bool {
	for _, f := range filterNames {
		if f == name {
			return true
		}
	}
	return false
}

// ApplyFilter applies a named effect to an image.
func ApplyFilter(src image.Image, name string) (*image.NRGBA, error) {
	switch name {
	case "original":
		return imaging.Clone(src), nil
	case "grayscale":
		return imaging.Grayscale(src), nil
	case "sepia":
		return colorMatrix(src,
			[3]float64{0.393, 0.769, 0.189},
			[3]float64{0.349, 0.686, 0.168},
			[3]float64{0.272, 0.534, 0.131}), nil
	case "negative":
		return imaging.Invert(src), nil
	case "blur":
		return imaging.Blur(src, 1.5), nil
	case "contour":
		return imaging.Convolve3x3(src,
			[9]float64{
				-1, -1, -1,
				-1, 8, -1,
				-1, -1, -1,
			},
			&imaging.ConvolveOptions{Bias: 255}), nil
	case "emboss":
		return imaging.Convolve3x3(src,
			[9]float64{
				-1, 0, 0,
				0, 1, 0,
				0, 0, 0,
			},
			&imaging.ConvolveOptions{Bias: 128}), nil
	case "edge_enhance":
		return imaging.Convolve3x3(src,
			[9]float64{
				-1, -1, -1,
				-1, 9, -1,
				-1, -1, -1,
			},
			nil), nil
	case "sharpen":
		return imaging.Sharpen(src, 1.0), nil
	case "high_contrast":
		return imaging.AdjustContrast(src, 50), nil
	case "vivid":
		img := imaging.AdjustSaturation(src, 50)
		return imaging.AdjustContrast(img, 30), nil
	case "warm":
		return scaleChannels(src, 1.1, 1.0, 0.9), nil
	case "cool":
		return scaleChannels(src, 0.9, 1.0, 1.1), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFilter, "filter: %s", name)
	}
}

// colorMatrix maps each output channel to a weighted sum of the input
// channels, clamped to [0,255].
func colorMatrix(src image.Image, r, g, b [3]float64) *image.NRGBA {
	img := imaging.Clone(src)
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			pr := float64(row[x*4])
			pg := float64(row[x*4+1])
			pb := float64(row[x*4+2])
			row[x*4] = clampByte(r[0]*pr + r[1]*pg + r[2]*pb)
			row[x*4+1] = clampByte(g[0]*pr + g[1]*pg + g[2]*pb)
			row[x*4+2] = clampByte(b[0]*pr + b[1]*pg + b[2]*pb)
		}
	}
	return img
}

// scaleChannels multiplies each channel by a factor, clamped to [0,255].
func scaleChannels(src image.Image, r, g, b float64) *image.NRGBA {
	img := imaging.Clone(src)
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			row[x*4] = clampByte(r * float64(row[x*4]))
			row[x*4+1] = clampByte(g * float64(row[x*4+1]))
			row[x*4+2] = clampByte(b * float64(row[x*4+2]))
		}
	}
	return img
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
