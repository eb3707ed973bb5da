package grounding

import "strings"

// BlockType indicates the type of a content block in an answer
type BlockType string

const (
	BlockTypeText      BlockType = "text"
	BlockTypeCitations BlockType = "citations"
)

// ContentBlock is a single block of content in an answer. An answer holds
// an ordered sequence of blocks of varying types.
type ContentBlock interface {
	BlockType() BlockType
}

// TextBlock is a plain text segment of an answer.
type TextBlock struct {
	Text string `json:"text"`
}

func (b *TextBlock) BlockType() BlockType {
	return BlockTypeText
}

// Citation references a source consulted for the preceding text.
type Citation struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// CitationsBlock carries the citations attached to the preceding text
// segment.
type CitationsBlock struct {
	Citations []Citation `json:"citations"`
}

func (b *CitationsBlock) BlockType() BlockType {
	return BlockTypeCitations
}

// AnnotatedText assembles the blocks into a single string, appending each
// citation's source URL in brackets after the text it supports:
//
//	"Top trends are [https://example.com]"
func AnnotatedText(blocks []ContentBlock) string {
	var sb strings.Builder
	for _, block := range blocks {
		switch b := block.(type) {
		case *TextBlock:
			sb.WriteString(b.Text)
		case *CitationsBlock:
			for _, citation := range b.Citations {
				sb.WriteString(" [")
				sb.WriteString(citation.URL)
				sb.WriteString("]")
			}
		}
	}
	return sb.String()
}
