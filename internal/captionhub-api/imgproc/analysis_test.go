package imgproc

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSolidImage(t *testing.T) {
	img := imaging.New(40, 20, color.NRGBA{200, 100, 50, 255})

	analysis := Analyze(img, "png")

	require.Equal(t, 40, analysis.Width)
	require.Equal(t, 20, analysis.Height)
	require.Equal(t, "40 x 20 pixels", analysis.Dimensions)
	require.InDelta(t, (200.0+100.0+50.0)/3, analysis.Brightness, 0.01)
	require.Equal(t, "Dark", analysis.Tonality)
	require.InDelta(t, 0, analysis.Contrast, 0.01)
	require.Equal(t, "Low", analysis.ContrastDesc)
	require.InDelta(t, 200, analysis.ColorBalance.Red, 0.01)
	require.InDelta(t, 100, analysis.ColorBalance.Green, 0.01)
	require.InDelta(t, 50, analysis.ColorBalance.Blue, 0.01)
	require.Equal(t, "png", analysis.Format)
}

func TestAnalyzeTonality(t *testing.T) {
	light := imaging.New(10, 10, color.NRGBA{220, 220, 220, 255})
	require.Equal(t, "Light", Analyze(light, "").Tonality)
	require.Equal(t, "Unknown", Analyze(light, "").Format)
}

func TestDominantColorQuantized(t *testing.T) {
	// 200/51*51 = 153, 100/51*51 = 51, 50/51*51 = 0
	img := imaging.New(8, 8, color.NRGBA{200, 100, 50, 255})
	require.Equal(t, "#993300", Analyze(img, "").DominantColor)
}

func TestEstimateQualitySmallFlat(t *testing.T) {
	img := imaging.New(100, 100, color.NRGBA{128, 128, 128, 255})

	quality := EstimateQuality(img)

	require.Equal(t, "Poor", quality.ResolutionQuality)
	require.Equal(t, "Poor", quality.ContrastQuality)
	require.Equal(t, "Poor", quality.OverallQuality)
	require.InDelta(t, 1.0, quality.OverallScore, 0.01)
}

func TestEstimateQualityHighContrast(t *testing.T) {
	// checkerboard halves give stddev near 127.5
	img := imaging.New(2000, 1100, color.NRGBA{0, 0, 0, 255})
	for y := 0; y < 1100; y++ {
		for x := 1000; x < 2000; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	quality := EstimateQuality(img)

	require.Equal(t, "Very Good", quality.ResolutionQuality)
	require.Equal(t, "Excellent", quality.ContrastQuality)
	require.Equal(t, "Excellent", quality.OverallQuality)
}

func TestColorHistogram(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{10, 20, 30, 255})

	hist := ColorHistogram(img)

	require.Equal(t, 16, hist.Red[10])
	require.Equal(t, 16, hist.Green[20])
	require.Equal(t, 16, hist.Blue[30])
	require.Equal(t, 0, hist.Red[11])
}
