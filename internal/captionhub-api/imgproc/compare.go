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
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	ssimWindow = 8
	ssimK1     = 0.01
	ssimK2     = 0.03
	ssimL      = 255.0
)

// Comparison holds similarity metrics for two images resized to their
// common (minimum) dimensions.
type Comparison struct {
	Width                int     `json:"width"`
	Height               int     `json:"height"`
	Dimensions           string  `json:"dimensions"`
	MSE                  float64 `json:"mse"`
	SSIM                 float64 `json:"ssim"`
	HistogramCorrelation float64 `json:"histogram_correlation"`
	SimilarityPercentage float64 `json:"similarity_percentage"`
}

// resizePair scales both images down to the smaller common dimensions.
func resizePair(a, b image.Image) (*image.NRGBA, *image.NRGBA, int, int, error) {
	w1, h1 := a.Bounds().Dx(), a.Bounds().Dy()
	w2, h2 := b.Bounds().Dx(), b.Bounds().Dy()

	w := w1
	if w2 < w {
		w = w2
	}
	h := h1
	if h2 < h {
		h = h2
	}
	if w == 0 || h == 0 {
		return nil, nil, 0, 0, errors.New("[imgproc] compare images with empty dimensions")
	}

	img1 := imaging.Resize(a, w, h, imaging.Lanczos)
	img2 := imaging.Resize(b, w, h, imaging.Lanczos)
	return img1, img2, w, h, nil
}

// Compare resizes both images to their common dimensions and computes
// MSE, SSIM on grayscale and histogram correlation.
func Compare(a, b image.Image) (*Comparison, error) {
	img1, img2, w, h, err := resizePair(a, b)
	if err != nil {
		return nil, err
	}

	ssim := structuralSimilarity(img1, img2)
	return &Comparison{
		Width:                w,
		Height:               h,
		Dimensions:           fmt.Sprintf("%d x %d pixels", w, h),
		MSE:                  meanSquaredError(img1, img2),
		SSIM:                 ssim,
		HistogramCorrelation: histogramCorrelation(img1, img2),
		SimilarityPercentage: ssim * 100,
	}, nil
}

func meanSquaredError(img1, img2 *image.NRGBA) float64 {
	w := img1.Rect.Dx()
	h := img1.Rect.Dy()

	var sum float64
	for y := 0; y < h; y++ {
		row1 := img1.Pix[y*img1.Stride : y*img1.Stride+w*4]
		row2 := img2.Pix[y*img2.Stride : y*img2.Stride+w*4]
		for x := 0; x < w; x++ {
			for c := 0; c < 3; c++ {
				d := float64(row1[x*4+c]) - float64(row2[x*4+c])
				sum += d * d
			}
		}
	}
	return sum / float64(w*h*3)
}

// grayValues converts to luminance the way PIL's L mode does.
func grayValues(img *image.NRGBA) []float64 {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			r := float64(row[x*4])
			g := float64(row[x*4+1])
			b := float64(row[x*4+2])
			out[y*w+x] = 0.299*r + 0.587*g + 0.114*b
		}
	}
	return out
}

// structuralSimilarity computes mean SSIM over non-overlapping 8x8
// grayscale windows.
func structuralSimilarity(img1, img2 *image.NRGBA) float64 {
	w := img1.Rect.Dx()
	h := img1.Rect.Dy()

	gray1 := grayValues(img1)
	gray2 := grayValues(img2)

	c1 := (ssimK1 * ssimL) * (ssimK1 * ssimL)
	c2 := (ssimK2 * ssimL) * (ssimK2 * ssimL)

	var total float64
	var windows int
	for wy := 0; wy+ssimWindow <= h; wy += ssimWindow {
		for wx := 0; wx+ssimWindow <= w; wx += ssimWindow {
			var sum1, sum2 float64
			for y := wy; y < wy+ssimWindow; y++ {
				for x := wx; x < wx+ssimWindow; x++ {
					sum1 += gray1[y*w+x]
					sum2 += gray2[y*w+x]
				}
			}
			n := float64(ssimWindow * ssimWindow)
			mu1 := sum1 / n
			mu2 := sum2 / n

			var var1, var2, cov float64
			for y := wy; y < wy+ssimWindow; y++ {
				for x := wx; x < wx+ssimWindow; x++ {
					d1 := gray1[y*w+x] - mu1
					d2 := gray2[y*w+x] - mu2
					var1 += d1 * d1
					var2 += d2 * d2
					cov += d1 * d2
				}
			}
			var1 /= n - 1
			var2 /= n - 1
			cov /= n - 1

			num := (2*mu1*mu2 + c1) * (2*cov + c2)
			den := (mu1*mu1 + mu2*mu2 + c1) * (var1 + var2 + c2)
			total += num / den
			windows++
		}
	}

	if windows == 0 {
		// image smaller than one window, fall back to a global window
		return globalSSIM(gray1, gray2, c1, c2)
	}
	return total / float64(windows)
}

func globalSSIM(gray1, gray2 []float64, c1, c2 float64) float64 {
	n := float64(len(gray1))
	if n == 0 {
		return 0
	}

	var sum1, sum2 float64
	for i := range gray1 {
		sum1 += gray1[i]
		sum2 += gray2[i]
	}
	mu1 := sum1 / n
	mu2 := sum2 / n

	var var1, var2, cov float64
	for i := range gray1 {
		d1 := gray1[i] - mu1
		d2 := gray2[i] - mu2
		var1 += d1 * d1
		var2 += d2 * d2
		cov += d1 * d2
	}
	if n > 1 {
		var1 /= n - 1
		var2 /= n - 1
		cov /= n - 1
	}

	num := (2*mu1*mu2 + c1) * (2*cov + c2)
	den := (mu1*mu1 + mu2*mu2 + c1) * (var1 + var2 + c2)
	return num / den
}

// histogramCorrelation is the Bhattacharyya coefficient of the
// normalized 768-bin RGB histograms.
func histogramCorrelation(img1, img2 *image.NRGBA) float64 {
	hist1 := rgbHistogram(img1)
	hist2 := rgbHistogram(img2)

	var sum1, sum2 float64
	for i := range hist1 {
		sum1 += float64(hist1[i])
		sum2 += float64(hist2[i])
	}
	if sum1 == 0 || sum2 == 0 {
		return 0
	}

	var corr float64
	for i := range hist1 {
		corr += math.Sqrt(float64(hist1[i]) / sum1 * float64(hist2[i]) / sum2)
	}
	return corr
}

func rgbHistogram(img *image.NRGBA) [768]int {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	var hist [768]int
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			hist[row[x*4]]++
			hist[256+int(row[x*4+1])]++
			hist[512+int(row[x*4+2])]++
		}
	}
	return hist
}

// DiffImage renders the per-pixel absolute difference, doubled to make
// small differences visible.
func DiffImage(a, b image.Image) (*image.NRGBA, error) {
	img1, img2, w, h, err := resizePair(a, b)
	if err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row1 := img1.Pix[y*img1.Stride : y*img1.Stride+w*4]
		row2 := img2.Pix[y*img2.Stride : y*img2.Stride+w*4]
		rowOut := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for x := 0; x < w; x++ {
			for c := 0; c < 3; c++ {
				d := int(row1[x*4+c]) - int(row2[x*4+c])
				if d < 0 {
					d = -d
				}
				d *= 2
				if d > 255 {
					d = 255
				}
				rowOut[x*4+c] = uint8(d)
			}
			rowOut[x*4+3] = 255
		}
	}
	return out, nil
}

// SideBySide lays both images out on a white canvas with a separator
// band, borders and a caption under each image.
func SideBySide(a, b image.Image, captionA, captionB string) (*image.NRGBA, error) {
	img1, img2, w, h, err := resizePair(a, b)
	if err != nil {
		return nil, err
	}

	if captionA == "" {
		captionA = "Image 1"
	}
	if captionB == "" {
		captionB = "Image 2"
	}

	const margin = 20
	const textHeight = 40
	combinedW := w*2 + margin*3
	combinedH := h + margin*2 + textHeight

	canvas := imaging.New(combinedW, combinedH, color.NRGBA{255, 255, 255, 255})
	canvas = imaging.Paste(canvas, img1, image.Pt(margin, margin))
	canvas = imaging.Paste(canvas, img2, image.Pt(w+margin*2, margin))

	// separator band between the two images
	fillRect(canvas, w+margin, margin, w+margin*2, h+margin, color.NRGBA{200, 200, 200, 255})

	drawBorder(canvas, margin-1, margin-1, margin+w+1, margin+h+1, color.NRGBA{0, 0, 0, 255})
	drawBorder(canvas, w+margin*2-1, margin-1, w+margin*2+w+1, margin+h+1, color.NRGBA{0, 0, 0, 255})

	drawLabel(canvas, margin+w/2-50, h+margin+10, captionA)
	drawLabel(canvas, w+margin*2+w/2-50, h+margin+10, captionB)

	return canvas, nil
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func drawBorder(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for x := x0; x <= x1; x++ {
		img.SetNRGBA(x, y0, c)
		img.SetNRGBA(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		img.SetNRGBA(x0, y, c)
		img.SetNRGBA(x1, y, c)
	}
}

func drawLabel(img *image.NRGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(text)
}
