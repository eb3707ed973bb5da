package google

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/banner/media"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestProviderName(t *testing.T) {
	provider := NewProvider(nil)
	require.Equal(t, "google", provider.ProviderName())
	require.Contains(t, provider.SupportedModels(), DefaultGenerateModel)
	require.Contains(t, provider.SupportedModels(), DefaultEditModel)
}

func TestGenerateImageValidation(t *testing.T) {
	provider := NewProvider(nil)

	_, err := provider.GenerateImage(context.Background(), nil)
	require.Error(t, err)

	_, err = provider.GenerateImage(context.Background(), &media.ImageGenerationRequest{})
	require.Error(t, err)

	// A valid request against an uninitialized client fails before any
	// network traffic happens
	_, err = provider.GenerateImage(context.Background(), &media.ImageGenerationRequest{
		Prompt: "a banner",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not initialized")
}

func TestEditImageValidation(t *testing.T) {
	provider := NewProvider(nil)

	_, err := provider.EditImage(context.Background(), nil)
	require.Error(t, err)

	_, err = provider.EditImage(context.Background(), &media.ImageEditRequest{
		Prompt: "extend",
	})
	require.Error(t, err)

	_, err = provider.EditImage(context.Background(), &media.ImageEditRequest{
		Prompt: "extend",
		Image:  strings.NewReader("img"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "mask is required")
}

func TestImagesFromResponse(t *testing.T) {
	require.Empty(t, imagesFromResponse(nil))
	require.Empty(t, imagesFromResponse(&genai.GenerateContentResponse{}))
	require.Empty(t, imagesFromResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))

	response := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "here is your image"},
						{InlineData: &genai.Blob{
							Data:     []byte("pixels"),
							MIMEType: "image/png",
						}},
					},
				},
			},
		},
	}
	images := imagesFromResponse(response)
	require.Len(t, images, 1)
	require.Equal(t, "image/png", images[0].MediaType)
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("pixels")), images[0].B64JSON)

	data, err := images[0].Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("pixels"), data)
}
