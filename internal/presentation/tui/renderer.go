package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewHelpRenderer returns a function that renders markdown help text
// using glamour.
func NewHelpRenderer() func(string) (string, error) {
	// Auto style detects light/dark background at startup.
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
