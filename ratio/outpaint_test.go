package ratio

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"github.com/deepnoodle-ai/banner/imageutil"
	"github.com/deepnoodle-ai/banner/media"
	"github.com/stretchr/testify/require"
)

// MockImageGenerator is a mock implementation for testing
type MockImageGenerator struct {
	GenerateImageFunc func(ctx context.Context, req *media.ImageGenerationRequest) (*media.ImageGenerationResponse, error)
	EditImageFunc     func(ctx context.Context, req *media.ImageEditRequest) (*media.ImageEditResponse, error)
}

func (m *MockImageGenerator) GenerateImage(ctx context.Context, req *media.ImageGenerationRequest) (*media.ImageGenerationResponse, error) {
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, req)
	}
	return nil, media.ErrNoImage
}

func (m *MockImageGenerator) EditImage(ctx context.Context, req *media.ImageEditRequest) (*media.ImageEditResponse, error) {
	if m.EditImageFunc != nil {
		return m.EditImageFunc(ctx, req)
	}
	return nil, media.ErrNoImage
}

func (m *MockImageGenerator) SupportedModels() []string {
	return []string{"mock-model"}
}

func (m *MockImageGenerator) ProviderName() string {
	return "mock"
}

func TestOutpaintRequiresOptions(t *testing.T) {
	_, err := NewOutpaint(OutpaintOptions{Prompt: "extend"})
	require.Error(t, err)

	_, err = NewOutpaint(OutpaintOptions{Editor: &MockImageGenerator{}})
	require.Error(t, err)
}

func TestOutpaintCorrect(t *testing.T) {
	target := imageutil.Dimensions{Width: 3072, Height: 1024}

	var captured *media.ImageEditRequest
	var canvasData, maskData []byte
	editor := &MockImageGenerator{
		EditImageFunc: func(ctx context.Context, req *media.ImageEditRequest) (*media.ImageEditResponse, error) {
			captured = req
			var err error
			canvasData, err = io.ReadAll(req.Image)
			require.NoError(t, err)
			maskData, err = io.ReadAll(req.Mask)
			require.NoError(t, err)
			return &media.ImageEditResponse{
				Images: []media.GeneratedImage{
					{B64JSON: base64.StdEncoding.EncodeToString(encodedImage(t, 3072, 1024))},
				},
			}, nil
		},
	}

	strategy, err := NewOutpaint(OutpaintOptions{
		Editor: editor,
		Prompt: "extend the scene",
	})
	require.NoError(t, err)
	require.Equal(t, "outpaint", strategy.Name())

	out, err := strategy.Correct(context.Background(), encodedImage(t, 2048, 1024), target)
	require.NoError(t, err)

	dims, err := imageutil.DimensionsOf(out)
	require.NoError(t, err)
	require.Equal(t, target, dims)

	require.NotNil(t, captured)
	require.Equal(t, "extend the scene", captured.Prompt)
	require.Equal(t, "3072x1024", captured.Size)
	require.Equal(t, "premium", captured.Quality)
	require.Equal(t, 1, captured.Count)
	require.Equal(t, 8.0, captured.ProviderSpecific["guidance_scale"])
	require.Equal(t, 0, captured.ProviderSpecific["seed"])

	// Canvas and mask both match the target dimensions
	canvasDims, err := imageutil.DimensionsOf(canvasData)
	require.NoError(t, err)
	require.Equal(t, target, canvasDims)
	maskDims, err := imageutil.DimensionsOf(maskData)
	require.NoError(t, err)
	require.Equal(t, target, maskDims)
}

func TestOutpaintCropsWhenWiderThanTarget(t *testing.T) {
	target := imageutil.Dimensions{Width: 3072, Height: 1024}
	editor := &MockImageGenerator{
		EditImageFunc: func(ctx context.Context, req *media.ImageEditRequest) (*media.ImageEditResponse, error) {
			t.Fatal("editor must not be called when the image covers the target width")
			return nil, nil
		},
	}

	strategy, err := NewOutpaint(OutpaintOptions{Editor: editor, Prompt: "extend"})
	require.NoError(t, err)

	out, err := strategy.Correct(context.Background(), encodedImage(t, 4096, 1024), target)
	require.NoError(t, err)

	dims, err := imageutil.DimensionsOf(out)
	require.NoError(t, err)
	require.Equal(t, target, dims)
}

func TestOutpaintEditorError(t *testing.T) {
	editor := &MockImageGenerator{
		EditImageFunc: func(ctx context.Context, req *media.ImageEditRequest) (*media.ImageEditResponse, error) {
			return nil, media.ErrNoImage
		},
	}
	strategy, err := NewOutpaint(OutpaintOptions{Editor: editor, Prompt: "extend"})
	require.NoError(t, err)

	_, err = strategy.Correct(context.Background(), encodedImage(t, 2048, 1024), imageutil.Dimensions{Width: 3072, Height: 1024})
	require.Error(t, err)
	require.True(t, errors.Is(err, media.ErrGeneration))
	require.Contains(t, err.Error(), "3072x1024")
}
