package ideagen

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Parse modes
const (
	ModeStructured  = "structured"
	ModeHeuristic   = "heuristic"
	ModeUnparseable = "unparseable"
)

// Idea is one normalized (title, description) record parsed from a
// model response.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ParseResult holds the parsed ideas and which parse path produced them
type ParseResult struct {
	Ideas []Idea
	Mode  string
}

const (
	placeholderTitle       = "Untitled Idea"
	placeholderDescription = "No description provided"
)

var (
	codeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")
	blockSplitRe = regexp.MustCompile(`\n\s*\n`)
	ordinalRe    = regexp.MustCompile(`^[0-9]+\.\s*`)
)

// ParseResponse normalizes a raw model response into ideas. It first
// tries a JSON array of {title, description} objects (unwrapping a
// markdown code fence if present), then falls back to splitting the
// text on blank lines: first non-empty line of each block is the
// title, minus any leading "N. " ordinal, and the remaining lines
// joined with spaces are the description.
func ParseResponse(raw string) ParseResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ParseResult{Ideas: []Idea{}, Mode: ModeUnparseable}
	}

	if ideas, ok := parseJSON(trimmed); ok {
		return ParseResult{Ideas: ideas, Mode: ModeStructured}
	}

	ideas := parseHeuristic(trimmed)
	if len(ideas) == 0 {
		return ParseResult{Ideas: []Idea{}, Mode: ModeUnparseable}
	}
	return ParseResult{Ideas: ideas, Mode: ModeHeuristic}
}

func parseJSON(s string) ([]Idea, bool) {
	if m := codeFenceRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}

	var ideas []Idea
	if err := json.Unmarshal([]byte(s), &ideas); err != nil {
		return nil, false
	}

	for i := range ideas {
		if strings.TrimSpace(ideas[i].Title) == "" {
			ideas[i].Title = placeholderTitle
		}
		if strings.TrimSpace(ideas[i].Description) == "" {
			ideas[i].Description = placeholderDescription
		}
	}
	return ideas, true
}

func parseHeuristic(s string) []Idea {
	var ideas []Idea
	for _, block := range blockSplitRe.Split(s, -1) {
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}

		title := strings.TrimSpace(ordinalRe.ReplaceAllString(strings.TrimSpace(lines[0]), ""))
		if title == "" {
			title = placeholderTitle
		}

		description := placeholderDescription
		if len(lines) > 1 {
			var parts []string
			for _, line := range lines[1:] {
				parts = append(parts, strings.TrimSpace(line))
			}
			if joined := strings.TrimSpace(strings.Join(parts, " ")); joined != "" {
				description = joined
			}
		}

		ideas = append(ideas, Idea{Title: title, Description: description})
	}
	return ideas
}
