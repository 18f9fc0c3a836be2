package ideagen

import (
	"fmt"
	"strings"
)

// PromptFor builds the generation prompt for a content type, keyword
// list and idea count. Unrecognized content types get the generic
// template.
func PromptFor(contentType string, keywords []string, count int) string {
	var b strings.Builder

	switch contentType {
	case "blog":
		fmt.Fprintf(&b, "Generate %d unique blog post ideas", count)
	case "video":
		fmt.Fprintf(&b, "Generate %d unique video content ideas", count)
	case "social":
		fmt.Fprintf(&b, "Generate %d unique social media post ideas", count)
	default:
		fmt.Fprintf(&b, "Generate %d unique content ideas", count)
	}

	if len(keywords) > 0 {
		b.WriteString(" related to ")
		b.WriteString(strings.Join(keywords, ", "))
	}

	b.WriteString(". For each idea, provide a compelling title and a brief description. " +
		"Format the response as a JSON array with objects containing 'title' and 'description' properties.")

	return b.String()
}
