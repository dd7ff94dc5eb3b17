package feeds

import (
	"html"
	"strings"
)

// StripHTML removes markup from text with a simple in-tag/out-of-tag scan,
// then decodes character entities and trims surrounding whitespace. It is a
// best-effort stripper, not an HTML parser: any <...> pair is treated as a
// tag regardless of content, and unterminated tags swallow the rest of the
// string.
func StripHTML(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inTag := false
	for _, r := range text {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(html.UnescapeString(b.String()))
}

// Truncate caps s at n characters.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FindImageInHTML returns the src of the first <img> tag found by literal
// substring scan: the first "<img", then the first `src="` after it, then
// the quoted value. Best effort on purpose; the URL is not validated or
// fetched.
func FindImageInHTML(content string) string {
	imgStart := strings.Index(content, "<img")
	if imgStart == -1 {
		return ""
	}
	srcStart := strings.Index(content[imgStart:], `src="`)
	if srcStart == -1 {
		return ""
	}
	srcStart += imgStart + len(`src="`)
	srcEnd := strings.Index(content[srcStart:], `"`)
	if srcEnd == -1 {
		return ""
	}
	return content[srcStart : srcStart+srcEnd]
}
