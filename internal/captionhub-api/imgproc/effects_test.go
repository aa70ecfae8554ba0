package imgproc

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFilters(t *testing.T) {
	filters := Filters()
	require.Len(t, filters, 13)
	require.Equal(t, "original", filters[0])

	for _, name := range filters {
		require.True(t, IsFilter(name), name)
	}
	require.False(t, IsFilter("vintage"))
}

func TestApplyFilterUnknown(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{10, 20, 30, 255})

	_, err := ApplyFilter(img, "vintage")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownFilter))
}

func TestApplyFilterOriginal(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{10, 20, 30, 255})

	out, err := ApplyFilter(img, "original")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{10, 20, 30, 255}, out.NRGBAAt(1, 1))
}

func TestApplyFilterNegative(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{10, 20, 30, 255})

	out, err := ApplyFilter(img, "negative")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{245, 235, 225, 255}, out.NRGBAAt(0, 0))
}

func TestApplyFilterGrayscale(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{200, 50, 100, 255})

	out, err := ApplyFilter(img, "grayscale")
	require.NoError(t, err)
	px := out.NRGBAAt(2, 2)
	require.Equal(t, px.R, px.G)
	require.Equal(t, px.G, px.B)
}

func TestApplyFilterSepiaClamps(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{255, 255, 255, 255})

	out, err := ApplyFilter(img, "sepia")
	require.NoError(t, err)
	// white exceeds 255 on the red and green rows and must clamp
	require.Equal(t, uint8(255), out.NRGBAAt(0, 0).R)
	require.Equal(t, uint8(255), out.NRGBAAt(0, 0).G)
	// blue row sums to 0.937*255
	require.Equal(t, uint8(239), out.NRGBAAt(0, 0).B)
}

func TestApplyFilterWarmCool(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{100, 100, 100, 255})

	warm, err := ApplyFilter(img, "warm")
	require.NoError(t, err)
	require.Equal(t, uint8(110), warm.NRGBAAt(0, 0).R)
	require.Equal(t, uint8(100), warm.NRGBAAt(0, 0).G)
	require.Equal(t, uint8(90), warm.NRGBAAt(0, 0).B)

	cool, err := ApplyFilter(img, "cool")
	require.NoError(t, err)
	require.Equal(t, uint8(90), cool.NRGBAAt(0, 0).R)
	require.Equal(t, uint8(110), cool.NRGBAAt(0, 0).B)
}

func TestApplyFilterAllSucceed(t *testing.T) {
	img := imaging.New(16, 16, color.NRGBA{120, 80, 60, 255})

	for _, name := range Filters() {
		out, err := ApplyFilter(img, name)
		require.NoError(t, err, name)
		require.Equal(t, 16, out.Rect.Dx(), name)
		require.Equal(t, 16, out.Rect.Dy(), name)
	}
}
