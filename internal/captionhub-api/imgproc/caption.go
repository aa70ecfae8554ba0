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

	"github.com/disintegration/imaging"
)

// namedColor anchors for describing the dominant color.
var namedColors = []struct {
	name    string
	r, g, b int
}{
	{"red", 255, 0, 0},
	{"green", 0, 160, 0},
	{"blue", 0, 0, 255},
	{"yellow", 255, 255, 0},
	{"orange", 255, 140, 0},
	{"purple", 128, 0, 200},
	{"pink", 255, 150, 200},
	{"brown", 140, 80, 30},
}

// colorName maps an RGB triple to a coarse color word.
func colorName(r, g, b uint8) string {
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}

	// low saturation reads as a neutral tone
	if int(max)-int(min) < 30 {
		switch {
		case max < 60:
			return "black"
		case max > 200:
			return "white"
		default:
			return "gray"
		}
	}

	// scale to full brightness so dark shades keep their hue
	scale := 255.0 / float64(max)
	nr := int(float64(r) * scale)
	ng := int(float64(g) * scale)
	nb := int(float64(b) * scale)

	best := ""
	bestDist := int(^uint(0) >> 1)
	for _, c := range namedColors {
		dr := nr - c.r
		dg := ng - c.g
		db := nb - c.b
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			best = c.name
			bestDist = dist
		}
	}
	return best
}

// DescribeImage builds a short descriptive caption from measured image
// statistics when the uploader supplies no caption text.
func DescribeImage(src image.Image, format string) string {
	analysis := Analyze(src, format)
	return describeAnalysis(analysis, dominantName(src))
}

func dominantName(src image.Image) string {
	hex := dominantColorHex(imaging.Clone(src))
	var r, g, b uint8
	fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return colorName(r, g, b)
}

func describeAnalysis(a *Analysis, color string) string {
	orientation := "square"
	switch {
	case a.Width > a.Height:
		orientation = "landscape"
	case a.Height > a.Width:
		orientation = "portrait"
	}

	tone := "bright"
	if a.Tonality == "Dark" {
		tone = "dark"
	}

	if a.ContrastDesc == "Low" {
		return fmt.Sprintf("A %s, low contrast %s image with predominantly %s tones.", tone, orientation, color)
	}
	return fmt.Sprintf("A %s, high contrast %s image with predominantly %s tones.", tone, orientation, color)
}
