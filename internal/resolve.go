package internal

import (
	"fmt"
	"path/filepath"
	"strings"
)

// JoinPrefixes concatenates the prefix captured from the line itself,
// the configured extra prefix and the file path. No separator is added
// around the extra prefix; a caller that wants one puts it in the
// configured string ("root/").
func JoinPrefixes(prefix, extraPrefix, filePath string) string {
	switch {
	case prefix != "" && extraPrefix != "":
		return extraPrefix + prefix + "/" + filePath
	case prefix != "":
		return prefix + "/" + filePath
	case extraPrefix != "":
		return extraPrefix + filePath
	default:
		return filePath
	}
}

// ResolvePath builds the display path for a parsed line: the prefix
// concatenation, anchored at currentDir when relative, re-expressed
// relative to currentDir. Paths inside the working tree come back with
// an explicit "./" anchor; paths above it keep their ".." climb.
//
// The error case (no relative path between the two) can only happen on
// systems where paths live on different roots, e.g. Windows drives.
func ResolvePath(prefix, filePath, extraPrefix, currentDir string) (string, error) {
	joined := JoinPrefixes(prefix, extraPrefix, filePath)

	target := joined
	if !filepath.IsAbs(target) {
		target = filepath.Join(currentDir, target)
	}

	rel, err := filepath.Rel(currentDir, target)
	if err != nil {
		return "", fmt.Errorf("no relative path from %s to %s: %w", currentDir, joined, err)
	}

	switch {
	case rel == "." || rel == "..":
	case strings.HasPrefix(rel, ".."+string(filepath.Separator)):
	default:
		rel = "./" + rel
	}
	return rel, nil
}
