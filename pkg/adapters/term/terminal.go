// Package term provides the real terminal Source: buffered line reads
// from stdin and non-echoing secret reads via the platform terminal API.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	xterm "golang.org/x/term"

	"github.com/aretw0/tendril/pkg/domain"
)

// Source reads user input from a file (normally os.Stdin) and satisfies
// ports.Source. Secret reads suppress echo when the input is a terminal
// and fall back to plain line reads on pipes so scripts keep working.
type Source struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
	inTTY  bool
	outTTY bool
}

// New creates a terminal source. Nil arguments default to os.Stdin and
// os.Stdout.
func New(in *os.File, out *os.File) *Source {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Source{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     int(in.Fd()),
		inTTY:  isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()),
		outTTY: isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()),
	}
}

// ReadLine reads one line without the trailing newline. EOF with no
// pending text maps to domain.ErrCancelled.
func (s *Source) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCancelled, err)
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return trimEOL(line), nil
			}
			return "", fmt.Errorf("%w: end of input", domain.ErrCancelled)
		}
		return "", fmt.Errorf("terminal read: %w", err)
	}
	return trimEOL(line), nil
}

// ReadSecret reads one line without echoing it. On non-terminals it
// degrades to ReadLine.
func (s *Source) ReadSecret(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCancelled, err)
	}
	if !s.inTTY {
		return s.ReadLine(ctx)
	}
	b, err := xterm.ReadPassword(s.fd)
	// ReadPassword swallows the user's newline; restore it so the next
	// prompt does not land on the same line.
	fmt.Fprintln(s.out)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: end of input", domain.ErrCancelled)
		}
		return "", fmt.Errorf("secret read: %w", err)
	}
	return string(b), nil
}

// Interactive reports whether both ends are attached to a terminal.
func (s *Source) Interactive() bool {
	return s.inTTY && s.outTTY
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
