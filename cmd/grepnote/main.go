package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"github.com/Hanaasagi/grepnote/cmd"
	"github.com/Hanaasagi/grepnote/internal"
	"github.com/Hanaasagi/grepnote/internal/logger"
	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName     = "grepnote"
	defaultSize = 4096
)

var (
	Version     = "0.1.0"
	CommitSha   = "unknown"
	FullVersion = Version + "-" + CommitSha
)

var appDir = filepath.Join(xdg.StateHome, appName)

func init() {
	// Initialize logging. Stdout is the data stream, so diagnostics go
	// to a state-dir log file; failures here must not kill the filter.
	if err := os.MkdirAll(appDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating state directory: %v\n", err)
		return
	}

	if err := logger.Init(filepath.Join(appDir, appName+".log")); err != nil {
		fmt.Fprintf(os.Stderr, "error initializing logger: %v\n", err)
	}

	// Initialize crash reporting
	if f, err := os.Create(filepath.Join(appDir, "crash")); err == nil {
		_ = debug.SetCrashOutput(f, debug.CrashOptions{})
	}
}

// AppConfig holds application configuration
type AppConfig struct {
	prefix      string
	highlight   string
	checkExists bool
	stripANSI   bool
	maxWidth    int
	colors      ColorFlags
	noColor     bool
	inputFile   string
	target      string
	showVersion bool
}

// ColorFlags groups color-related configuration
type ColorFlags struct {
	path      string
	row       string
	column    string
	highlight string
}

// openInput returns a buffered reader over the input file or stdin
func openInput(inputFile string) (*bufio.Reader, io.Closer, error) {
	if inputFile == "" {
		return bufio.NewReaderSize(os.Stdin, defaultSize), nil, nil
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input file: %w", err)
	}
	return bufio.NewReaderSize(file, defaultSize), file, nil
}

// openOutput returns the output stream for the target file or stdout,
// plus a finish func that flushes and closes it
func openOutput(target string) (io.Writer, func() error, error) {
	if target == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(target)
	if err != nil {
		return nil, nil, fmt.Errorf("creating target file: %w", err)
	}

	writer := bufio.NewWriterSize(file, defaultSize)
	finish := func() error {
		if err := writer.Flush(); err != nil {
			file.Close() // nolint: errcheck
			return fmt.Errorf("flushing target file: %w", err)
		}
		return file.Close()
	}
	return writer, finish, nil
}

// processLines runs the line loop: read, recognize, resolve, write.
// One line is fully handled before the next is read. Per-line problems,
// read errors included, are reported on stderr and never turn into a
// command failure; the loop only winds down when the stream is drained.
func processLines(reader *bufio.Reader, out io.Writer, writer *internal.Writer, stripANSI bool) {
	for {
		raw, readErr := reader.ReadString('\n')

		if raw != "" {
			line := strings.TrimSuffix(raw, "\n")
			line = strings.TrimSuffix(line, "\r")
			processLine(line, out, writer, stripANSI)
		}

		if readErr == io.EOF {
			return
		}
		if readErr != nil {
			slog.Error("Reading input", "error", readErr)
			fmt.Fprintf(os.Stderr, "grepnote: reading input: %v\n", readErr)
			if raw == "" {
				return
			}
		}
	}
}

func processLine(line string, out io.Writer, writer *internal.Writer, stripANSI bool) {
	if !utf8.ValidString(line) {
		slog.Error("Skipping line with invalid encoding")
		fmt.Fprintln(os.Stderr, "grepnote: skipping line with invalid encoding")
		return
	}

	if stripANSI {
		line = internal.StripANSI(line)
	}

	parsed, ok := internal.ParseLine(line)
	if !ok {
		// Unrecognized lines pass through untouched.
		_, _ = fmt.Fprintln(out, line)
		return
	}

	if err := writer.WriteLine(parsed); err != nil {
		slog.Error("Skipping line", "error", err)
		fmt.Fprintf(os.Stderr, "grepnote: %v\n", err)
	}
}

// resolveMaxWidth maps the configured width to an effective one: zero
// means "current terminal width", which only makes sense when output
// actually goes to a tty, not to a target file
func resolveMaxWidth(configured int, target string) int {
	if configured != 0 {
		return configured
	}
	if target != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		return -1
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return -1
	}
	return width
}

// runApp runs the main application logic
func runApp(config *AppConfig) error {
	if config.showVersion {
		fmt.Printf("%s version: %s\n", appName, FullVersion)
		return nil
	}

	if config.noColor {
		color.NoColor = true
	}

	highlight, err := compileHighlight(config.highlight)
	if err != nil {
		return err
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	reader, closer, err := openInput(config.inputFile)
	if err != nil {
		return err
	}
	defer func() {
		if closer != nil {
			closer.Close() // nolint: errcheck
		}
	}()

	out, finish, err := openOutput(config.target)
	if err != nil {
		return err
	}

	writer := internal.NewWriter(out, internal.WriterOptions{
		ExtraPrefix:    config.prefix,
		Highlight:      highlight,
		CurrentDir:     currentDir,
		CheckExists:    config.checkExists,
		MaxWidth:       resolveMaxWidth(config.maxWidth, config.target),
		PathColor:      config.colors.path,
		RowColor:       config.colors.row,
		ColumnColor:    config.colors.column,
		HighlightColor: config.colors.highlight,
	})

	processLines(reader, out, writer, config.stripANSI)
	return finish()
}

func compileHighlight(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	return internal.CompileHighlight(expr)
}

func main() {
	fileConfig, err := LoadConfigFromFile(filepath.Join(xdg.ConfigHome, appName, "config.toml"))
	if err != nil {
		slog.Error("Error loading config file", "error", err)
		fmt.Fprintf(os.Stderr, "grepnote: %v\n", err)
		os.Exit(1)
	}

	config := &AppConfig{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Reformat grep-like diagnostic lines for terminal display",
		Long: color.New(color.FgHiMagenta).Sprintf(
			"Reformat grep-like \"path:line:col: message\" output with resolved paths and highlights. %s",
			color.New(color.FgBlue).Sprintf("(%s)", FullVersion),
		),
		Example: "  rg -n TODO | grepnote -H todo\n  cargo build 2>&1 | grepnote -c -p src/",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(config)
		},
	}

	rootCmd.Flags().StringVarP(&config.prefix, "prefix", "p", fileConfig.Core.Prefix, "A string to prefix every resolved path with")
	rootCmd.Flags().StringVarP(&config.highlight, "highlight", "H", fileConfig.Core.Highlight, "Case-insensitive regexp for items to highlight in the message")
	rootCmd.Flags().BoolVarP(&config.checkExists, "check-exists", "c", fileConfig.Core.CheckExists, "Include only lines whose resolved path exists on disk")
	rootCmd.Flags().BoolVarP(&config.stripANSI, "strip-ansi", "s", fileConfig.Core.StripANSI, "Strip ANSI escape sequences from input before matching")
	rootCmd.Flags().IntVarP(&config.maxWidth, "max-width", "w", fileConfig.Core.MaxWidth, "Truncate output lines to this display width (0: terminal width, negative: unlimited)")
	rootCmd.Flags().StringVar(&config.colors.path, "path-color", fileConfig.Colors.Path, "Sets the color for resolved paths")
	rootCmd.Flags().StringVar(&config.colors.row, "row-color", fileConfig.Colors.Row, "Sets the color for row numbers")
	rootCmd.Flags().StringVar(&config.colors.column, "col-color", fileConfig.Colors.Column, "Sets the color for column numbers")
	rootCmd.Flags().StringVar(&config.colors.highlight, "highlight-color", fileConfig.Colors.Highlight, "Sets the color for highlighted matches")
	rootCmd.Flags().BoolVar(&config.noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVarP(&config.inputFile, "input-file", "i", "", "Read input from file instead of stdin")
	rootCmd.Flags().StringVarP(&config.target, "target", "t", "", "Write output to the specified path instead of stdout")
	rootCmd.Flags().BoolVarP(&config.showVersion, "version", "v", false, "Print version and exit")

	rootCmd.SetHelpTemplate(cmd.HelpTemplate)
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		return cmd.ColorUsageFunc(c.OutOrStderr(), c)
	})

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Error executing command", "error", err)
		os.Exit(1)
	}
}
