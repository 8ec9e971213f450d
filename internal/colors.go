package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Color renders text with a foreground color for terminal display.
type Color interface {
	FgString(text string) string
}

// ColorWrapper wraps fatih/color functionality. RGB colors fall back to
// a raw truecolor escape sequence since fatih/color only covers the
// named ANSI palette.
type ColorWrapper struct {
	colorFunc func(...interface{}) string
	isRGB     bool
	r, g, b   uint8
}

// FgString returns text with the color applied.
func (c ColorWrapper) FgString(text string) string {
	if c.isRGB {
		if color.NoColor {
			return text
		}
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.r, c.g, c.b, text)
	}
	return c.colorFunc(text)
}

var rgbRegex = regexp.MustCompile(`^#([a-fA-F0-9]{2})([a-fA-F0-9]{2})([a-fA-F0-9]{2})$`)

var (
	colorCache = make(map[string]Color, 16)
	colorMutex sync.RWMutex
)

var predefinedColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"default": color.Reset,
}

// GetColor parses a color name or "#rrggbb" string and returns a Color.
// Unknown names panic; color names come from the startup configuration,
// so this fires before any line is processed.
func GetColor(name string) Color {
	colorMutex.RLock()
	if cached, exists := colorCache[name]; exists {
		colorMutex.RUnlock()
		return cached
	}
	colorMutex.RUnlock()

	var result Color

	if m := rgbRegex.FindStringSubmatch(name); m != nil {
		r, _ := strconv.ParseUint(m[1], 16, 8)
		g, _ := strconv.ParseUint(m[2], 16, 8)
		b, _ := strconv.ParseUint(m[3], 16, 8)
		result = ColorWrapper{
			isRGB: true,
			r:     uint8(r),
			g:     uint8(g),
			b:     uint8(b),
		}
	} else {
		attr, exists := predefinedColors[strings.ToLower(name)]
		if !exists {
			panic(fmt.Sprintf("Unknown color: %s", name))
		}
		result = ColorWrapper{colorFunc: color.New(attr).SprintFunc()}
	}

	colorMutex.Lock()
	colorCache[name] = result
	colorMutex.Unlock()

	return result
}
