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
	"math"
	"time"

	"github.com/disintegration/imaging"
)

// Analysis holds per-image statistics.
type Analysis struct {
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Dimensions    string       `json:"dimensions"`
	FileSize      string       `json:"file_size"`
	Brightness    float64      `json:"brightness"`
	Tonality      string       `json:"tonality"`
	Contrast      float64      `json:"contrast"`
	ContrastDesc  string       `json:"contrast_desc"`
	ColorBalance  ColorBalance `json:"color_balance"`
	DominantColor string       `json:"dominant_color"`
	Format        string       `json:"format"`
	Timestamp     string       `json:"timestamp"`
}

// ColorBalance is the per-channel mean.
type ColorBalance struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// Quality is a coarse quality estimate derived from resolution and contrast.
type Quality struct {
	ResolutionQuality string  `json:"resolution_quality"`
	ContrastQuality   string  `json:"contrast_quality"`
	OverallQuality    string  `json:"overall_quality"`
	OverallScore      float64 `json:"overall_score"`
}

// Histogram holds 256-bin per-channel counts.
type Histogram struct {
	Red   [256]int `json:"red"`
	Green [256]int `json:"green"`
	Blue  [256]int `json:"blue"`
}

// channelStats returns per-channel mean and the mean of the per-channel
// standard deviations, matching PIL's ImageStat on an RGB image.
func channelStats(img *image.NRGBA) (mean [3]float64, stddev [3]float64) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	n := float64(w * h)
	if n == 0 {
		return
	}

	var sum, sumSq [3]float64
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			for c := 0; c < 3; c++ {
				v := float64(row[x*4+c])
				sum[c] += v
				sumSq[c] += v * v
			}
		}
	}
	for c := 0; c < 3; c++ {
		mean[c] = sum[c] / n
		variance := sumSq[c]/n - mean[c]*mean[c]
		if variance < 0 {
			variance = 0
		}
		stddev[c] = math.Sqrt(variance)
	}
	return
}

// Analyze computes brightness, contrast, color balance and the dominant
// color of an image. Format is the decoded format name, may be empty.
func Analyze(src image.Image, format string) *Analysis {
	img := imaging.Clone(src)
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	mean, stddev := channelStats(img)
	brightness := (mean[0] + mean[1] + mean[2]) / 3
	contrast := (stddev[0] + stddev[1] + stddev[2]) / 3

	tonality := "Light"
	if brightness < 128 {
		tonality = "Dark"
	}
	contrastDesc := "High"
	if contrast < 50 {
		contrastDesc = "Low"
	}

	if format == "" {
		format = "Unknown"
	}

	return &Analysis{
		Width:         w,
		Height:        h,
		Dimensions:    fmt.Sprintf("%d x %d pixels", w, h),
		FileSize:      fmt.Sprintf("%.2f MB (estimated)", float64(w*h*3)/1024/1024),
		Brightness:    brightness,
		Tonality:      tonality,
		Contrast:      contrast,
		ContrastDesc:  contrastDesc,
		ColorBalance:  ColorBalance{Red: mean[0], Green: mean[1], Blue: mean[2]},
		DominantColor: dominantColorHex(img),
		Format:        format,
		Timestamp:     time.Now().Format("2006-01-02 15:04:05"),
	}
}

// dominantColorHex quantizes each channel into 51-wide buckets and
// returns the most frequent bucket as a hex color.
func dominantColorHex(img *image.NRGBA) string {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	counts := make(map[[3]uint8]int)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			key := [3]uint8{
				row[x*4] / 51 * 51,
				row[x*4+1] / 51 * 51,
				row[x*4+2] / 51 * 51,
			}
			counts[key]++
		}
	}

	var best [3]uint8
	bestCount := -1
	for k, c := range counts {
		if c > bestCount {
			best = k
			bestCount = c
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", best[0], best[1], best[2])
}

// EstimateQuality scores an image on resolution and contrast and folds
// the two into an overall label.
func EstimateQuality(src image.Image) *Quality {
	img := imaging.Clone(src)
	pixels := img.Rect.Dx() * img.Rect.Dy()

	var resolutionQuality string
	var resolutionScore int
	switch {
	case pixels >= 4000000:
		resolutionQuality = "Excellent"
		resolutionScore = 5
	case pixels >= 2000000:
		resolutionQuality = "Very Good"
		resolutionScore = 4
	case pixels >= 1000000:
		resolutionQuality = "Good"
		resolutionScore = 3
	case pixels >= 500000:
		resolutionQuality = "Fair"
		resolutionScore = 2
	default:
		resolutionQuality = "Poor"
		resolutionScore = 1
	}

	_, stddev := channelStats(img)
	contrast := (stddev[0] + stddev[1] + stddev[2]) / 3

	var contrastQuality string
	var contrastScore int
	switch {
	case contrast >= 70:
		contrastQuality = "Excellent"
		contrastScore = 5
	case contrast >= 50:
		contrastQuality = "Very Good"
		contrastScore = 4
	case contrast >= 30:
		contrastQuality = "Good"
		contrastScore = 3
	case contrast >= 15:
		contrastQuality = "Fair"
		contrastScore = 2
	default:
		contrastQuality = "Poor"
		contrastScore = 1
	}

	overall := float64(resolutionScore+contrastScore) / 2
	var overallQuality string
	switch {
	case overall >= 4.5:
		overallQuality = "Excellent"
	case overall >= 3.5:
		overallQuality = "Very Good"
	case overall >= 2.5:
		overallQuality = "Good"
	case overall >= 1.5:
		overallQuality = "Fair"
	default:
		overallQuality = "Poor"
	}

	return &Quality{
		ResolutionQuality: resolutionQuality,
		ContrastQuality:   contrastQuality,
		OverallQuality:    overallQuality,
		OverallScore:      overall,
	}
}

// ColorHistogram counts per-channel values into 256 bins.
func ColorHistogram(src image.Image) *Histogram {
	img := imaging.Clone(src)
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	hist := &Histogram{}
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			hist.Red[row[x*4]]++
			hist.Green[row[x*4+1]]++
			hist.Blue[row[x*4+2]]++
		}
	}
	return hist
}
