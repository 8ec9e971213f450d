package internal

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/mattn/go-runewidth"
)

// Writer turns parsed lines into formatted output. One Writer is built
// at startup from the run configuration and shared by every line; it
// holds no per-line state.
type Writer struct {
	out         io.Writer
	extraPrefix string
	highlight   *regexp.Regexp
	currentDir  string
	checkExists bool
	maxWidth    int

	pathColor      Color
	rowColor       Color
	columnColor    Color
	highlightColor Color
}

// WriterOptions carries the run configuration for a Writer.
type WriterOptions struct {
	// ExtraPrefix is prepended ahead of everything when rebuilding the
	// display path. Empty disables it.
	ExtraPrefix string
	// Highlight marks matches inside the message body. Nil disables it.
	Highlight *regexp.Regexp
	// CurrentDir anchors relative paths and the existence probe.
	CurrentDir string
	// CheckExists suppresses lines whose resolved path cannot be opened.
	CheckExists bool
	// MaxWidth truncates output lines to this display width. Zero or
	// negative disables truncation.
	MaxWidth int

	PathColor      string
	RowColor       string
	ColumnColor    string
	HighlightColor string
}

// NewWriter creates a Writer for the given output stream.
func NewWriter(out io.Writer, opts WriterOptions) *Writer {
	return &Writer{
		out:            out,
		extraPrefix:    opts.ExtraPrefix,
		highlight:      opts.Highlight,
		currentDir:     opts.CurrentDir,
		checkExists:    opts.CheckExists,
		maxWidth:       opts.MaxWidth,
		pathColor:      GetColor(opts.PathColor),
		rowColor:       GetColor(opts.RowColor),
		columnColor:    GetColor(opts.ColumnColor),
		highlightColor: GetColor(opts.HighlightColor),
	}
}

// WriteLine resolves, filters and writes one parsed line. A suppressed
// line produces no output and no error. Write errors on the output
// stream are dropped so a broken pipe cannot abort the run; only a
// failed path resolution is reported back to the caller.
func (w *Writer) WriteLine(line GrepLike) error {
	rel, err := ResolvePath(line.Prefix, line.FilePath, w.extraPrefix, w.currentDir)
	if err != nil {
		return err
	}

	if w.checkExists && !w.exists(rel) {
		return nil
	}

	row := line.Row
	if row == "" {
		row = "0"
	}
	col := line.Column
	if col == "" {
		col = "0"
	}

	contents := line.Contents
	if w.maxWidth > 0 {
		used := runewidth.StringWidth(rel + ":" + row + ":" + col + ": ")
		if room := w.maxWidth - used; room > 0 {
			contents = runewidth.Truncate(contents, room, "…")
		} else {
			// The fixed fields alone fill the budget; even the
			// truncation marker would overrun it.
			contents = ""
		}
	}

	var buf bytes.Buffer
	buf.WriteString(w.pathColor.FgString(rel))
	buf.WriteByte(':')
	buf.WriteString(w.rowColor.FgString(row))
	buf.WriteByte(':')
	buf.WriteString(w.columnColor.FgString(col))
	buf.WriteString(": ")
	w.writeContents(&buf, contents)
	buf.WriteByte('\n')

	_, _ = w.out.Write(buf.Bytes())
	return nil
}

// exists probes the resolved path with a plain open-for-read. Any
// failure counts as "does not exist"; the handle is released right away.
func (w *Writer) exists(rel string) bool {
	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.currentDir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// writeContents emits the message body, marking every non-overlapping
// highlight match. Concatenating the emitted spans in order always
// rebuilds the body exactly.
func (w *Writer) writeContents(buf *bytes.Buffer, contents string) {
	if w.highlight == nil {
		buf.WriteString(contents)
		return
	}

	offset := 0
	for _, loc := range w.highlight.FindAllStringIndex(contents, -1) {
		buf.WriteString(contents[offset:loc[0]])
		buf.WriteString(w.highlightColor.FgString(contents[loc[0]:loc[1]]))
		offset = loc[1]
	}
	buf.WriteString(contents[offset:])
}
