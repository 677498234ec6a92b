package tui

import "github.com/muesli/termenv"

// NewErrorStyler returns a decorator that paints rejection messages red,
// degrading gracefully on terminals without color support.
func NewErrorStyler() func(string) string {
	p := termenv.ColorProfile()
	return func(msg string) string {
		return termenv.String("✗ " + msg).Foreground(p.Color("#ef4444")).String()
	}
}

// NewHintStyler returns a decorator for secondary text (hints, defaults).
func NewHintStyler() func(string) string {
	p := termenv.ColorProfile()
	return func(msg string) string {
		return termenv.String(msg).Foreground(p.Color("#9ca3af")).String()
	}
}
