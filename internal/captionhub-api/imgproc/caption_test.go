package imgproc

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestColorName(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    string
	}{
		{0, 0, 0, "black"},
		{255, 255, 255, "white"},
		{128, 128, 128, "gray"},
		{250, 10, 10, "red"},
		{10, 10, 250, "blue"},
		{10, 180, 10, "green"},
		{250, 250, 10, "yellow"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, colorName(tt.r, tt.g, tt.b))
	}
}

func TestDescribeImage(t *testing.T) {
	dark := imaging.New(80, 40, color.NRGBA{10, 10, 80, 255})
	caption := DescribeImage(dark, "png")
	require.Equal(t, "A dark, low contrast landscape image with predominantly blue tones.", caption)

	bright := imaging.New(40, 80, color.NRGBA{230, 230, 230, 255})
	caption = DescribeImage(bright, "png")
	require.Equal(t, "A bright, low contrast portrait image with predominantly white tones.", caption)
}
