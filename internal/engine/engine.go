// Package engine implements the retry-validate prompt loop: display the
// question, read raw text from the source, run the validators in order,
// and either return the accepted value or re-prompt with the rejection
// reason until the attempt budget runs out.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/ports"
	"github.com/aretw0/tendril/pkg/validate"
)

// HelpRenderer transforms help text before display (e.g. markdown to ANSI).
type HelpRenderer func(string) (string, error)

// Styler decorates a message before display (e.g. paints rejections red).
type Styler func(string) string

// Engine drives the prompt loop for a single Question at a time. It holds
// only wiring (source, writer, logger); every Ask call is independent.
type Engine struct {
	source     ports.Source
	out        io.Writer
	logger     *slog.Logger
	renderHelp HelpRenderer
	styleError Styler
	styleHint  Styler
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger used for attempt-level debug logs.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHelpRenderer sets the transform applied to help text on display.
func WithHelpRenderer(r HelpRenderer) Option {
	return func(e *Engine) { e.renderHelp = r }
}

// WithErrorStyler sets the decoration applied to rejection messages.
func WithErrorStyler(s Styler) Option {
	return func(e *Engine) { e.styleError = s }
}

// WithHintStyler sets the decoration applied to the hint and default
// segments of the prompt line.
func WithHintStyler(s Styler) Option {
	return func(e *Engine) { e.styleHint = s }
}

// New creates an Engine writing prompts to out and reading from source.
func New(source ports.Source, out io.Writer, opts ...Option) *Engine {
	if out == nil {
		out = io.Discard
	}
	e := &Engine{
		source: source,
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ask runs the retry-validate loop for q and returns the accepted raw
// value. Validators run left to right; the first rejection short-circuits
// and its reason is shown before re-prompting. A validator error that is
// not a rejection propagates unchanged.
func (e *Engine) Ask(ctx context.Context, q domain.Question, validators ...validate.Validator) (string, error) {
	chain := validate.Chain(validators...)
	attempts := 0

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrCancelled, err)
		}

		e.writePrompt(q)

		raw, err := e.read(ctx, q)
		if err != nil {
			return "", err
		}

		value := raw
		if !q.Secret {
			value = strings.TrimSpace(raw)
		}

		// Help requests do not consume an attempt.
		if q.Help != "" && strings.TrimSpace(raw) == "?" {
			e.writeHelp(q)
			continue
		}

		attempts++

		if value == "" {
			if q.HasDefault {
				e.logger.Debug("accepted default", "field", q.FieldName())
				return q.Default, nil
			}
			if !q.Required {
				return "", nil
			}
			empty := &domain.EmptyInputError{Field: q.FieldName()}
			if err := e.rejectAttempt(q, attempts, empty); err != nil {
				return "", err
			}
			continue
		}

		if err := chain(value); err != nil {
			var rejection *domain.ValidationError
			if !errors.As(err, &rejection) {
				// The validator itself failed; not a user mistake.
				return "", err
			}
			if err := e.rejectAttempt(q, attempts, rejection); err != nil {
				return "", err
			}
			continue
		}

		e.logger.Debug("accepted input", "field", q.FieldName(), "attempts", attempts)
		return value, nil
	}
}

// rejectAttempt shows the rejection to the user and decides whether the
// loop may continue. It returns ExhaustedAttemptsError once a bounded
// question runs out of attempts.
func (e *Engine) rejectAttempt(q domain.Question, attempts int, cause error) error {
	msg := cause.Error()
	if e.styleError != nil {
		msg = e.styleError(msg)
	}
	fmt.Fprintln(e.out, msg)

	e.logger.Debug("rejected input",
		"field", q.FieldName(),
		"attempt", attempts,
		"reason", cause.Error())

	if q.MaxAttempts > 0 && attempts >= q.MaxAttempts {
		return &domain.ExhaustedAttemptsError{Attempts: attempts}
	}
	return nil
}

func (e *Engine) read(ctx context.Context, q domain.Question) (string, error) {
	if q.Secret {
		return e.source.ReadSecret(ctx)
	}
	return e.source.ReadLine(ctx)
}

func (e *Engine) writePrompt(q domain.Question) {
	var b strings.Builder
	b.WriteString(q.Prompt)
	if q.Hint != "" {
		b.WriteString(" " + e.hint("("+q.Hint+")"))
	}
	if q.Help != "" {
		b.WriteString(" " + e.hint("[? for help]"))
	}
	if q.HasDefault && q.Default != "" && !q.Secret {
		b.WriteString(" " + e.hint("["+q.Default+"]"))
	}
	b.WriteString(": ")
	fmt.Fprint(e.out, b.String())
}

func (e *Engine) hint(s string) string {
	if e.styleHint != nil {
		return e.styleHint(s)
	}
	return s
}

func (e *Engine) writeHelp(q domain.Question) {
	help := q.Help
	if e.renderHelp != nil {
		if rendered, err := e.renderHelp(q.Help); err == nil {
			help = rendered
		}
	}
	fmt.Fprintln(e.out, strings.TrimRight(help, "\n"))
}
