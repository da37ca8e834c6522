package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput turns previews off regardless of the terminal; set by --no-color.
var DisableColourOutput = false

// SupportsANSIColours reports whether stdout is a terminal that should receive
// truecolour escapes. NO_COLOR and TERM=dumb turn previews off.
func SupportsANSIColours() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func previewsEnabled() bool {
	return !DisableColourOutput && SupportsANSIColours()
}

// ColourPreview returns an ANSI-coloured block for a colour.
// Width specifies how many characters wide the block should be.
// Returns an empty string when colour output is disabled.
func ColourPreview(c RGB, width int) string {
	if !previewsEnabled() {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	preview := ColourPreview(rgb, width)
	if preview == "" {
		return rgb.Hex()
	}
	return fmt.Sprintf("%s %s", preview, rgb.Hex())
}

// FormatColourWithLabel formats a colour with a label and preview.
func FormatColourWithLabel(rgb RGB, label string, width int) string {
	preview := ColourPreview(rgb, width)
	if preview == "" {
		return fmt.Sprintf("%-20s %s", label, rgb.Hex())
	}
	return fmt.Sprintf("%s  %-20s %s", preview, label, rgb.Hex())
}
