package sprites

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dimensions describes the size of a text frame.
type Dimensions struct {
	Lines int
	Width int
}

// Measure returns the line count and widest line of a frame.
// A trailing newline does not start a new line.
func Measure(text string) Dimensions {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Dimensions{}
	}
	return Dimensions{
		Lines: strings.Count(text, "\n") + 1,
		Width: lipgloss.Width(text),
	}
}
