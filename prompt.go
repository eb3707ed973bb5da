package banner

import (
	"fmt"

	"github.com/deepnoodle-ai/banner/imageutil"
)

// BuildPrompt wraps the image description with an explicit dimension
// instruction. The remote model is not guaranteed to honor it, which is why
// the pipeline inspects the returned image and corrects it when needed.
func BuildPrompt(content string, target imageutil.Dimensions) string {
	return fmt.Sprintf(`IMPORTANT: Generate an image with EXACTLY %d pixels width and EXACTLY %d pixels height. The aspect ratio must be exactly %s. Resolution: %s pixels.

Image content: %s

Remember: The output MUST be %s pixels, no other size.`,
		target.Width, target.Height, target.RatioLabel(), target, content, target)
}
