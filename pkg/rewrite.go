package cargov

import (
	"fmt"
	"strings"
)

// RewriteScope selects how much of the manifest is rewritten.
type RewriteScope string

const (
	// ScopeDocument replaces every occurrence of the old version text in the
	// whole document, including unrelated fields that happen to match.
	ScopeDocument RewriteScope = "document"
	// ScopeVersionLine replaces the old version text only on the first line
	// containing "version".
	ScopeVersionLine RewriteScope = "line"
)

// ParseRewriteScope maps "document" or "line" to a RewriteScope. The empty
// string selects ScopeDocument.
func ParseRewriteScope(s string) (RewriteScope, error) {
	switch sc := RewriteScope(s); sc {
	case "":
		return ScopeDocument, nil
	case ScopeDocument, ScopeVersionLine:
		return sc, nil
	}
	return "", fmt.Errorf("unknown rewrite scope %q (expected %q or %q)", s, ScopeDocument, ScopeVersionLine)
}

// RewriteDocument replaces every occurrence of oldVersion in doc with
// newVersion.
func RewriteDocument(doc, oldVersion, newVersion string) string {
	return strings.ReplaceAll(doc, oldVersion, newVersion)
}

// RewriteVersionLine replaces oldVersion with newVersion on the version line
// only. The rest of the document is returned untouched.
func RewriteVersionLine(doc, oldVersion, newVersion string) string {
	lines := strings.Split(doc, "\n")
	idx, line := findVersionLine(lines)
	if idx < 0 {
		return doc
	}
	lines[idx] = strings.ReplaceAll(line, oldVersion, newVersion)
	return strings.Join(lines, "\n")
}

func (s RewriteScope) rewrite(doc, oldVersion, newVersion string) string {
	if s == ScopeVersionLine {
		return RewriteVersionLine(doc, oldVersion, newVersion)
	}
	return RewriteDocument(doc, oldVersion, newVersion)
}

// Occurrence is a place in a document where a version string appears.
type Occurrence struct {
	Line   int // 1-based
	Column int // 1-based byte offset
	Text   string
}

// FindOccurrences lists every place text appears in doc, in document order.
func FindOccurrences(doc, text string) []Occurrence {
	if text == "" {
		return nil
	}
	var found []Occurrence
	for i, line := range strings.Split(doc, "\n") {
		offset := 0
		for {
			j := strings.Index(line[offset:], text)
			if j < 0 {
				break
			}
			found = append(found, Occurrence{
				Line:   i + 1,
				Column: offset + j + 1,
				Text:   strings.TrimSpace(line),
			})
			offset += j + len(text)
		}
	}
	return found
}

// CollateralOccurrences lists the occurrences of text outside the version
// line. ScopeDocument rewrites these as well.
func CollateralOccurrences(doc, text string) []Occurrence {
	idx, _ := findVersionLine(strings.Split(doc, "\n"))
	var out []Occurrence
	for _, o := range FindOccurrences(doc, text) {
		if o.Line != idx+1 {
			out = append(out, o)
		}
	}
	return out
}
