package ratio

import (
	"image"
	"image/color"

	"github.com/deepnoodle-ai/banner/imageutil"
	"github.com/disintegration/imaging"
)

// Layout describes how a source image is scaled and positioned on a canvas
// of the target size prior to outpainting.
type Layout struct {
	// Scale is the uniform factor applied so the source height matches
	// the target height
	Scale float64

	// Scaled is the size of the source image after scaling
	Scaled imageutil.Dimensions

	// LeftPad and RightPad are the widths of the margins to be
	// synthesized on each side. When the total to add is odd, the right
	// margin takes the extra pixel.
	LeftPad  int
	RightPad int
}

// PlanOutpaint computes the scale and padding needed to center a source
// image of the given size on a target-size canvas at full target height.
func PlanOutpaint(src, target imageutil.Dimensions) Layout {
	scale := float64(target.Height) / float64(src.Height)
	scaled := imageutil.Dimensions{
		Width:  int(float64(src.Width) * scale),
		Height: target.Height,
	}
	widthToAdd := target.Width - scaled.Width
	leftPad := widthToAdd / 2
	return Layout{
		Scale:    scale,
		Scaled:   scaled,
		LeftPad:  leftPad,
		RightPad: widthToAdd - leftPad,
	}
}

// BuildCanvas scales the source image per the layout and centers it
// horizontally on a black canvas of the target size.
func BuildCanvas(img image.Image, layout Layout, target imageutil.Dimensions) *image.NRGBA {
	scaled := imaging.Resize(img, layout.Scaled.Width, layout.Scaled.Height, imaging.Lanczos)
	canvas := imaging.New(target.Width, target.Height, color.NRGBA{0, 0, 0, 255})
	return imaging.Paste(canvas, scaled, image.Pt(layout.LeftPad, 0))
}

// BuildMask builds the outpainting mask for the layout: white marks the
// regions to be synthesized, black marks the pasted region to keep.
func BuildMask(layout Layout, target imageutil.Dimensions) *image.NRGBA {
	mask := imaging.New(target.Width, target.Height, color.NRGBA{255, 255, 255, 255})
	keep := imaging.New(layout.Scaled.Width, layout.Scaled.Height, color.NRGBA{0, 0, 0, 255})
	return imaging.Paste(mask, keep, image.Pt(layout.LeftPad, 0))
}
