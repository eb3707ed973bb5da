// Package imageutil provides helpers for inspecting, encoding, and saving
// raster images handled by the banner pipeline.
package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/disintegration/imaging"

	_ "image/jpeg"
	_ "image/png"
)

// Dimensions is a width and height pair in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Ratio returns the width-to-height aspect ratio.
func (d Dimensions) Ratio() float64 {
	if d.Height == 0 {
		return 0
	}
	return float64(d.Width) / float64(d.Height)
}

// String returns the dimensions in "WxH" form, e.g. "3072x1024".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// RatioLabel returns the aspect ratio in its simplest integer form,
// e.g. "3:1" for 3072x1024.
func (d Dimensions) RatioLabel() string {
	g := gcd(d.Width, d.Height)
	if g == 0 {
		return "0:0"
	}
	return fmt.Sprintf("%d:%d", d.Width/g, d.Height/g)
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// DimensionsOf inspects encoded image bytes and returns their dimensions
// without decoding the full pixel data.
func DimensionsOf(data []byte) (Dimensions, error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, fmt.Errorf("error inspecting image: %w", err)
	}
	return Dimensions{Width: config.Width, Height: config.Height}, nil
}

// Decode decodes encoded image bytes into an image.Image.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes an image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("error encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultFilename returns the timestamp-derived filename used when a caller
// does not supply one, e.g. "generated_image_20260115_093042.png".
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("generated_image_%s.png", t.Format("20060102_150405"))
}

// Save writes encoded image bytes to the given path. If path is empty, a
// timestamp-derived default filename is used. The written file's dimensions
// are inspected and returned along with the path actually written.
func Save(data []byte, path string) (string, Dimensions, error) {
	if path == "" {
		path = DefaultFilename(time.Now())
	}
	dims, err := DimensionsOf(data)
	if err != nil {
		return "", Dimensions{}, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", Dimensions{}, fmt.Errorf("error writing image file: %w", err)
	}
	return path, dims, nil
}
