package index

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinDescriptionLength is the shortest paragraph accepted as a description,
// counted in characters after markup is stripped.
const MinDescriptionLength = 20

var (
	blockSplitRE = regexp.MustCompile(`\n\s*\n`)
	inlineCodeRE = regexp.MustCompile("`([^`]+)`")
	boldRE       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRE     = regexp.MustCompile(`\*([^*]+)\*`)
	linkRE       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	tagRE        = regexp.MustCompile(`<[^>]+>`)
	spaceRE      = regexp.MustCompile(`\s+`)
)

// ExtractDescription returns the first prose paragraph of body with inline
// markdown removed, or "" when none is long enough. Headings, list items and
// code fences are not prose.
func ExtractDescription(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	for _, block := range blockSplitRE.Split(body, -1) {
		block = strings.TrimSpace(block)
		if block == "" || !isProse(block) {
			continue
		}
		if text := stripInline(block); utf8.RuneCountInString(text) >= MinDescriptionLength {
			return text
		}
	}
	return ""
}

func isProse(block string) bool {
	for _, prefix := range []string{"#", "-", "*", "1.", "```"} {
		if strings.HasPrefix(block, prefix) {
			return false
		}
	}
	return true
}

func stripInline(s string) string {
	s = inlineCodeRE.ReplaceAllString(s, "$1")
	s = boldRE.ReplaceAllString(s, "$1")
	s = italicRE.ReplaceAllString(s, "$1")
	s = linkRE.ReplaceAllString(s, "$1")
	s = tagRE.ReplaceAllString(s, "")
	s = spaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
