package internal

import (
	"strings"

	ansi "github.com/leaanthony/go-ansi-parser"
)

// StripANSI removes ANSI escape sequences from one input line so that
// pre-colored tool output (grep --color, compilers) still matches the
// line grammar. Lines without an escape byte are returned as-is, and a
// parse failure falls back to the raw line rather than dropping it.
func StripANSI(line string) string {
	if !strings.ContainsRune(line, '\x1b') {
		return line
	}

	elements, err := ansi.Parse(line)
	if err != nil {
		return line
	}

	var sb strings.Builder
	for _, element := range elements {
		sb.WriteString(element.Label)
	}
	return sb.String()
}
