package internal

import (
	"fmt"
	"regexp"
)

// GrepLike is one recognized diagnostic line in the loose
// "path[:row[:col]]: message" convention emitted by grep, compilers
// and linters.
//
// Row and Column are kept as the digit text from the input. They are
// only ever echoed back out, so they are never parsed as integers and
// leading zeros survive. An empty string means the field was absent.
type GrepLike struct {
	Prefix   string
	FilePath string
	Row      string
	Column   string
	Contents string
}

// lineRegexp recognizes grep-like lines. The optional leading group eats
// a "something/" chunk and captures the inner path segment as prefix.
// The grammar is ambiguous on purpose: group boundaries follow the
// engine's first-match semantics, not a longest-match parse, so lines
// with extra colon-separated numeric tokens can split in surprising but
// stable ways.
var lineRegexp = regexp.MustCompile(
	`(?:[^:/]+/?(?P<prefix>[^:]+):)?(?P<file>[^:]+)(?::(?P<row>[0-9]+))?(?::(?P<col>[0-9]+))?:\s*(?P<contents>.*)`,
)

var (
	prefixIdx   = lineRegexp.SubexpIndex("prefix")
	fileIdx     = lineRegexp.SubexpIndex("file")
	rowIdx      = lineRegexp.SubexpIndex("row")
	colIdx      = lineRegexp.SubexpIndex("col")
	contentsIdx = lineRegexp.SubexpIndex("contents")
)

// ParseLine matches one input line against the grep-like grammar.
// The second return value is false when the line does not match at all;
// callers are expected to pass such lines through untouched.
func ParseLine(line string) (GrepLike, bool) {
	m := lineRegexp.FindStringSubmatch(line)
	if m == nil {
		return GrepLike{}, false
	}

	return GrepLike{
		Prefix:   m[prefixIdx],
		FilePath: m[fileIdx],
		Row:      m[rowIdx],
		Column:   m[colIdx],
		Contents: m[contentsIdx],
	}, true
}

// CompileHighlight compiles a user-supplied highlight pattern with
// case-insensitive matching. An invalid pattern is a startup error.
func CompileHighlight(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("invalid highlight pattern %q: %w", expr, err)
	}
	return re, nil
}
