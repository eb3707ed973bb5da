package ratio

import (
	"image/color"
	"testing"

	"github.com/deepnoodle-ai/banner/imageutil"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestPlanOutpaint(t *testing.T) {
	target := imageutil.Dimensions{Width: 3072, Height: 1024}

	layout := PlanOutpaint(imageutil.Dimensions{Width: 2048, Height: 1024}, target)
	require.Equal(t, 1.0, layout.Scale)
	require.Equal(t, imageutil.Dimensions{Width: 2048, Height: 1024}, layout.Scaled)
	require.Equal(t, 512, layout.LeftPad)
	require.Equal(t, 512, layout.RightPad)
}

func TestPlanOutpaintOddRemainder(t *testing.T) {
	target := imageutil.Dimensions{Width: 3072, Height: 1024}

	// 2049 scaled width leaves 1023 pixels to add; the right margin
	// takes the extra pixel
	layout := PlanOutpaint(imageutil.Dimensions{Width: 2049, Height: 1024}, target)
	require.Equal(t, 2049, layout.Scaled.Width)
	require.Equal(t, 511, layout.LeftPad)
	require.Equal(t, 512, layout.RightPad)
}

func TestPlanOutpaintScalesToTargetHeight(t *testing.T) {
	target := imageutil.Dimensions{Width: 3072, Height: 1024}

	layout := PlanOutpaint(imageutil.Dimensions{Width: 1024, Height: 512}, target)
	require.Equal(t, 2.0, layout.Scale)
	require.Equal(t, imageutil.Dimensions{Width: 2048, Height: 1024}, layout.Scaled)
	require.Equal(t, 512, layout.LeftPad)
	require.Equal(t, 512, layout.RightPad)
}

func TestBuildMask(t *testing.T) {
	target := imageutil.Dimensions{Width: 3072, Height: 1024}
	src := imageutil.Dimensions{Width: 2048, Height: 1024}
	layout := PlanOutpaint(src, target)

	mask := BuildMask(layout, target)
	bounds := mask.Bounds()
	require.Equal(t, target.Width, bounds.Dx())
	require.Equal(t, target.Height, bounds.Dy())

	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}

	// Fill regions outside the pasted rectangle
	require.Equal(t, white, mask.NRGBAAt(0, 0))
	require.Equal(t, white, mask.NRGBAAt(layout.LeftPad-1, 512))
	require.Equal(t, white, mask.NRGBAAt(layout.LeftPad+layout.Scaled.Width, 512))
	require.Equal(t, white, mask.NRGBAAt(target.Width-1, target.Height-1))

	// Keep region exactly within the pasted rectangle's bounds
	require.Equal(t, black, mask.NRGBAAt(layout.LeftPad, 0))
	require.Equal(t, black, mask.NRGBAAt(layout.LeftPad+layout.Scaled.Width-1, target.Height-1))
	require.Equal(t, black, mask.NRGBAAt(target.Width/2, target.Height/2))
}

func TestBuildCanvas(t *testing.T) {
	target := imageutil.Dimensions{Width: 3072, Height: 1024}
	src := imaging.New(2048, 1024, color.NRGBA{200, 100, 50, 255})
	layout := PlanOutpaint(imageutil.Dimensions{Width: 2048, Height: 1024}, target)

	canvas := BuildCanvas(src, layout, target)
	bounds := canvas.Bounds()
	require.Equal(t, target.Width, bounds.Dx())
	require.Equal(t, target.Height, bounds.Dy())

	// Margins are black, the centered region carries the source color
	require.Equal(t, color.NRGBA{0, 0, 0, 255}, canvas.NRGBAAt(0, 512))
	require.Equal(t, color.NRGBA{0, 0, 0, 255}, canvas.NRGBAAt(target.Width-1, 512))
	require.Equal(t, color.NRGBA{200, 100, 50, 255}, canvas.NRGBAAt(target.Width/2, 512))
}
