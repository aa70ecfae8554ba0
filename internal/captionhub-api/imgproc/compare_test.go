package imgproc

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestCompareIdenticalImages(t *testing.T) {
	img := imaging.New(32, 32, color.NRGBA{120, 80, 60, 255})

	cmp, err := Compare(img, img)
	require.NoError(t, err)

	require.Equal(t, "32 x 32 pixels", cmp.Dimensions)
	require.InDelta(t, 0, cmp.MSE, 0.0001)
	require.InDelta(t, 1.0, cmp.SSIM, 0.0001)
	require.InDelta(t, 1.0, cmp.HistogramCorrelation, 0.0001)
	require.InDelta(t, 100.0, cmp.SimilarityPercentage, 0.01)
}

func TestCompareUsesMinimumDimensions(t *testing.T) {
	a := imaging.New(64, 16, color.NRGBA{120, 80, 60, 255})
	b := imaging.New(16, 64, color.NRGBA{120, 80, 60, 255})

	cmp, err := Compare(a, b)
	require.NoError(t, err)
	require.Equal(t, 16, cmp.Width)
	require.Equal(t, 16, cmp.Height)
}

func TestCompareDifferentImages(t *testing.T) {
	a := imaging.New(32, 32, color.NRGBA{0, 0, 0, 255})
	b := imaging.New(32, 32, color.NRGBA{255, 255, 255, 255})

	cmp, err := Compare(a, b)
	require.NoError(t, err)
	require.InDelta(t, 255*255, cmp.MSE, 0.01)
	require.Less(t, cmp.SSIM, 0.01)
	require.InDelta(t, 0, cmp.HistogramCorrelation, 0.0001)
}

func TestCompareEmptyImage(t *testing.T) {
	a := imaging.New(32, 32, color.NRGBA{0, 0, 0, 255})
	empty := imaging.New(0, 0, color.NRGBA{})

	_, err := Compare(a, empty)
	require.Error(t, err)
}

func TestDiffImageDoublesDifference(t *testing.T) {
	a := imaging.New(8, 8, color.NRGBA{100, 100, 100, 255})
	b := imaging.New(8, 8, color.NRGBA{120, 100, 40, 255})

	diff, err := DiffImage(a, b)
	require.NoError(t, err)

	px := diff.NRGBAAt(3, 3)
	require.Equal(t, uint8(40), px.R)
	require.Equal(t, uint8(0), px.G)
	require.Equal(t, uint8(120), px.B)
}

func TestSideBySideLayout(t *testing.T) {
	a := imaging.New(50, 40, color.NRGBA{10, 10, 10, 255})
	b := imaging.New(50, 40, color.NRGBA{240, 240, 240, 255})

	combined, err := SideBySide(a, b, "before", "after")
	require.NoError(t, err)

	// two images, three margins wide; height plus margins and text band
	require.Equal(t, 50*2+20*3, combined.Rect.Dx())
	require.Equal(t, 40+20*2+40, combined.Rect.Dy())

	// left image content
	require.Equal(t, uint8(10), combined.NRGBAAt(25, 25).R)
	// right image content
	require.Equal(t, uint8(240), combined.NRGBAAt(50+40+25, 25).R)
	// separator band
	require.Equal(t, uint8(200), combined.NRGBAAt(50+30, 25).R)
}
