// Package grounding provides a small client for asking a hosted chat model
// a question, optionally with web grounding enabled. Grounded answers carry
// inline citations pointing at the web sources the model consulted.
package grounding

import (
	"context"
	"fmt"
	"sort"

	"github.com/deepnoodle-ai/banner/slogger"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// Options configures a grounding Client.
type Options struct {
	// Client is the underlying GenAI client (required)
	Client *genai.Client

	// Model overrides the default chat model
	Model string

	// Logger receives progress output
	Logger slogger.Logger
}

// Client asks questions of a hosted chat model. Each call is stateless; no
// conversation history is retained between calls.
type Client struct {
	client *genai.Client
	model  string
	logger slogger.Logger
}

// New creates a new grounding Client.
func New(opts Options) (*Client, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}
	return &Client{
		client: opts.Client,
		model:  opts.Model,
		logger: opts.Logger,
	}, nil
}

// Ask sends the question with no tools enabled and returns the answer.
func (c *Client) Ask(ctx context.Context, question string) (*Answer, error) {
	c.logger.Info("asking without grounding", "model", c.model)
	return c.ask(ctx, question, nil)
}

// AskGrounded sends the question with the web grounding tool enabled. The
// returned answer's blocks interleave text segments with the citations that
// support them.
func (c *Client) AskGrounded(ctx context.Context, question string) (*Answer, error) {
	c.logger.Info("asking with web grounding", "model", c.model)
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
	return c.ask(ctx, question, config)
}

func (c *Client) ask(ctx context.Context, question string, config *genai.GenerateContentConfig) (*Answer, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(question),
		}, genai.RoleUser),
	}
	response, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("error generating answer: %w", err)
	}
	answer, err := answerFromResponse(response)
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// Answer is the parsed result of one chat call.
type Answer struct {
	// Blocks is the ordered content of the answer
	Blocks []ContentBlock

	// Raw is the full structured response from the service
	Raw *genai.GenerateContentResponse
}

// Text returns the answer's plain text with citations omitted.
func (a *Answer) Text() string {
	var text string
	for _, block := range a.Blocks {
		if b, ok := block.(*TextBlock); ok {
			text += b.Text
		}
	}
	return text
}

// AnnotatedText returns the answer text with each citation's source URL
// appended in brackets after the text it supports.
func (a *Answer) AnnotatedText() string {
	return AnnotatedText(a.Blocks)
}

// answerFromResponse converts a GenAI response into an Answer, splitting
// the text into blocks wherever grounding metadata attaches citations.
func answerFromResponse(response *genai.GenerateContentResponse) (*Answer, error) {
	if response == nil || len(response.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}
	candidate := response.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("no content in response")
	}

	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	blocks := blocksFromGrounding(text, candidate.GroundingMetadata)
	return &Answer{Blocks: blocks, Raw: response}, nil
}

// blocksFromGrounding splits the answer text at the end of each grounded
// segment and inserts a citations block pointing at the supporting sources.
// Without grounding metadata the whole text becomes a single block.
func blocksFromGrounding(text string, metadata *genai.GroundingMetadata) []ContentBlock {
	if metadata == nil || len(metadata.GroundingSupports) == 0 {
		return []ContentBlock{&TextBlock{Text: text}}
	}

	supports := make([]*genai.GroundingSupport, 0, len(metadata.GroundingSupports))
	for _, support := range metadata.GroundingSupports {
		if support != nil && support.Segment != nil {
			supports = append(supports, support)
		}
	}
	sort.SliceStable(supports, func(i, j int) bool {
		return supports[i].Segment.EndIndex < supports[j].Segment.EndIndex
	})

	var blocks []ContentBlock
	cursor := 0
	for _, support := range supports {
		end := int(support.Segment.EndIndex)
		if end > len(text) {
			end = len(text)
		}
		if end <= cursor {
			continue
		}
		blocks = append(blocks, &TextBlock{Text: text[cursor:end]})
		if citations := citationsFor(support, metadata); len(citations) > 0 {
			blocks = append(blocks, &CitationsBlock{Citations: citations})
		}
		cursor = end
	}
	if cursor < len(text) {
		blocks = append(blocks, &TextBlock{Text: text[cursor:]})
	}
	return blocks
}

func citationsFor(support *genai.GroundingSupport, metadata *genai.GroundingMetadata) []Citation {
	var citations []Citation
	for _, index := range support.GroundingChunkIndices {
		if index < 0 || int(index) >= len(metadata.GroundingChunks) {
			continue
		}
		chunk := metadata.GroundingChunks[index]
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		citations = append(citations, Citation{
			URL:   chunk.Web.URI,
			Title: chunk.Web.Title,
		})
	}
	return citations
}
