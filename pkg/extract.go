package cargov

import (
	"fmt"
	"strings"
)

// versionKey is the substring that marks the version line of a manifest.
const versionKey = "version"

// findVersionLine returns the index and content of the first line containing
// "version", or -1 when there is none.
func findVersionLine(lines []string) (int, string) {
	for i, line := range lines {
		if strings.Contains(line, versionKey) {
			return i, line
		}
	}
	return -1, ""
}

// ExtractVersion returns the current version text of a manifest document.
// The first line containing "version" is split on its last '='; double
// quotes and surrounding whitespace are stripped from the value.
func ExtractVersion(doc string) (string, error) {
	idx, line := findVersionLine(strings.Split(doc, "\n"))
	if idx < 0 {
		return "", ErrManifestMissingVersion
	}

	eq := strings.LastIndex(line, "=")
	if eq < 0 {
		return "", fmt.Errorf("%w: no '=' on version line %d: %q", ErrInvalidFormat, idx+1, strings.TrimSpace(line))
	}
	value := strings.ReplaceAll(line[eq+1:], `"`, "")
	return strings.TrimSpace(value), nil
}
