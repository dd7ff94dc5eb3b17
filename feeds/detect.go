// Package feeds turns raw feed documents into normalized entries and merges
// them into the final ranked list.
package feeds

import "strings"

// Dialect identifies which XML feed grammar a document uses.
type Dialect int

const (
	DialectRSS Dialect = iota
	DialectAtom
)

// detectWindow is how far into the document Detect looks.
const detectWindow = 500

// Detect classifies feed text as Atom or RSS 2.0 by sniffing for an Atom
// <feed> root near the start of the document. There is no fallback between
// dialects: a misclassified feed fails in the wrong parser downstream.
func Detect(text string) Dialect {
	head := text
	if len(head) > detectWindow {
		head = head[:detectWindow]
	}
	if strings.Contains(head, "<feed") {
		return DialectAtom
	}
	return DialectRSS
}
