package imageutil

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func encodedImage(t *testing.T, width, height int) []byte {
	t.Helper()
	data, err := EncodePNG(imaging.New(width, height, color.NRGBA{10, 20, 30, 255}))
	require.NoError(t, err)
	return data
}

func TestDimensions(t *testing.T) {
	d := Dimensions{Width: 3072, Height: 1024}
	require.Equal(t, 3.0, d.Ratio())
	require.Equal(t, "3072x1024", d.String())
	require.Equal(t, "3:1", d.RatioLabel())

	require.Equal(t, "2:1", Dimensions{Width: 2048, Height: 1024}.RatioLabel())
	require.Equal(t, "16:9", Dimensions{Width: 1920, Height: 1080}.RatioLabel())
	require.Equal(t, 0.0, Dimensions{Width: 10}.Ratio())
}

func TestDimensionsOf(t *testing.T) {
	dims, err := DimensionsOf(encodedImage(t, 640, 480))
	require.NoError(t, err)
	require.Equal(t, Dimensions{Width: 640, Height: 480}, dims)

	_, err = DimensionsOf([]byte("not an image"))
	require.Error(t, err)
}

func TestDefaultFilename(t *testing.T) {
	ts := time.Date(2026, 1, 15, 9, 30, 42, 0, time.UTC)
	require.Equal(t, "generated_image_20260115_093042.png", DefaultFilename(ts))
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	data := encodedImage(t, 2048, 1024)

	path, dims, err := Save(data, filepath.Join(dir, "banner.png"))
	require.NoError(t, err)
	require.Equal(t, Dimensions{Width: 2048, Height: 1024}, dims)

	// Reopening the saved file yields identical dimensions
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	reopened, err := DimensionsOf(saved)
	require.NoError(t, err)
	require.Equal(t, dims, reopened)
}

func TestSaveDefaultFilename(t *testing.T) {
	t.Chdir(t.TempDir())

	path, _, err := Save(encodedImage(t, 8, 8), "")
	require.NoError(t, err)
	require.Regexp(t, `^generated_image_\d{8}_\d{6}\.png$`, path)
	require.FileExists(t, path)
}

func TestSaveInvalidData(t *testing.T) {
	_, _, err := Save([]byte("garbage"), filepath.Join(t.TempDir(), "x.png"))
	require.Error(t, err)
}
