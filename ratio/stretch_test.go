package ratio

import (
	"context"
	"image/color"
	"testing"

	"github.com/deepnoodle-ai/banner/imageutil"
	"github.com/deepnoodle-ai/banner/slogger"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func encodedImage(t *testing.T, width, height int) []byte {
	t.Helper()
	data, err := imageutil.EncodePNG(imaging.New(width, height, color.NRGBA{120, 120, 120, 255}))
	require.NoError(t, err)
	return data
}

func TestStretchToTarget(t *testing.T) {
	target := imageutil.Dimensions{Width: 3072, Height: 1024}
	logger := slogger.NewCaptureLogger()
	strategy := NewStretch(logger)
	require.Equal(t, "stretch", strategy.Name())

	out, err := strategy.Correct(context.Background(), encodedImage(t, 2048, 1024), target)
	require.NoError(t, err)

	dims, err := imageutil.DimensionsOf(out)
	require.NoError(t, err)
	require.Equal(t, target, dims)

	require.Contains(t, logger.Messages(), "stretching to target dimensions")
	require.NotContains(t, logger.Messages(), "ratio already correct, simple high-quality resize")
}

func TestStretchRatioAlreadyCorrect(t *testing.T) {
	target := imageutil.Dimensions{Width: 3072, Height: 1024}
	logger := slogger.NewCaptureLogger()
	strategy := NewStretch(logger)

	// 1536x512 is already 3:1; expect the plain resize branch
	out, err := strategy.Correct(context.Background(), encodedImage(t, 1536, 512), target)
	require.NoError(t, err)

	dims, err := imageutil.DimensionsOf(out)
	require.NoError(t, err)
	require.Equal(t, target, dims)

	require.Contains(t, logger.Messages(), "ratio already correct, simple high-quality resize")
	require.NotContains(t, logger.Messages(), "stretching to target dimensions")
}

func TestStretchInvalidInput(t *testing.T) {
	strategy := NewStretch(nil)
	_, err := strategy.Correct(context.Background(), []byte("not an image"), imageutil.Dimensions{Width: 10, Height: 10})
	require.Error(t, err)
}
