package ideagen

import (
	"strings"
	"testing"
)

func TestPromptFor(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		keywords    []string
		count       int
		want        string
	}{
		{
			name:        "blog with keywords",
			contentType: "blog",
			keywords:    []string{"golang", "testing"},
			count:       5,
			want:        "Generate 5 unique blog post ideas related to golang, testing",
		},
		{
			name:        "video without keywords",
			contentType: "video",
			count:       3,
			want:        "Generate 3 unique video content ideas.",
		},
		{
			name:        "social",
			contentType: "social",
			count:       2,
			want:        "Generate 2 unique social media post ideas",
		},
		{
			name:        "unknown type falls back to generic",
			contentType: "podcast",
			count:       4,
			want:        "Generate 4 unique content ideas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromptFor(tt.contentType, tt.keywords, tt.count)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Prompt %q does not contain %q", got, tt.want)
			}
			if !strings.Contains(got, "JSON array") {
				t.Errorf("Prompt missing format instruction: %q", got)
			}
		})
	}
}
