package transform

import "strings"

// frontMatterMarker delimits the optional metadata block at the top of a
// workflow document.
const frontMatterMarker = "---"

// Description extracts the description field from a workflow's front-matter
// block. If the opening marker is absent, the closing marker is never
// found, or no description line exists, it falls back to "Executes <stem>".
// Front matter is advisory, so malformed input degrades to the fallback
// rather than erroring.
func Description(body, stem string) string {
	fallback := "Executes " + stem

	if !strings.HasPrefix(body, frontMatterMarker) {
		return fallback
	}

	end := strings.Index(body[len(frontMatterMarker):], frontMatterMarker)
	if end == -1 {
		return fallback
	}
	block := body[len(frontMatterMarker) : len(frontMatterMarker)+end]

	for _, line := range strings.Split(block, "\n") {
		value, ok := strings.CutPrefix(line, "description:")
		if !ok {
			continue
		}
		return unquote(strings.TrimSpace(value))
	}

	return fallback
}

// unquote strips one layer of matching enclosing quote characters.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
