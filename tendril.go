package tendril

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/tendril/internal/engine"
	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/internal/presentation/tui"
	"github.com/aretw0/tendril/pkg/adapters/term"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/ports"
	"github.com/aretw0/tendril/pkg/validate"
)

// Version is the library version reported by the CLI.
const Version = "0.2.0"

// Asker is the high-level entry point for the tendril library. It wraps
// the internal engine and provides typed convenience wrappers.
type Asker struct {
	source      ports.Source
	out         io.Writer
	logger      *slog.Logger
	engine      *engine.Engine
	errorStyler engine.Styler
	plain       bool
}

// Option defines a functional option for configuring the Asker.
type Option func(*Asker)

// WithSource injects a custom input source, bypassing the default
// terminal initialization.
func WithSource(source ports.Source) Option {
	return func(a *Asker) { a.source = source }
}

// WithOutput sets the writer prompts and errors are written to.
func WithOutput(w io.Writer) Option {
	return func(a *Asker) { a.out = w }
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Asker) { a.logger = logger }
}

// WithPlainOutput disables color styling and markdown help rendering even
// on interactive terminals.
func WithPlainOutput() Option {
	return func(a *Asker) { a.plain = true }
}

// New initializes an Asker. By default it reads from the process terminal
// and writes to stdout; styling is enabled only when both ends are
// attached to a real terminal.
func New(opts ...Option) *Asker {
	a := &Asker{}
	for _, opt := range opts {
		opt(a)
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.logger == nil {
		a.logger = logging.NewNop()
	}
	if a.source == nil {
		a.source = term.New(nil, nil)
	}

	engineOpts := []engine.Option{engine.WithLogger(a.logger)}
	if !a.plain {
		if it, ok := a.source.(ports.Interactive); ok && it.Interactive() {
			a.errorStyler = tui.NewErrorStyler()
			engineOpts = append(engineOpts,
				engine.WithErrorStyler(a.errorStyler),
				engine.WithHintStyler(tui.NewHintStyler()),
				engine.WithHelpRenderer(tui.NewHelpRenderer()),
			)
		}
	}

	a.engine = engine.New(a.source, a.out, engineOpts...)
	return a
}

// askConfig carries a Question plus the per-call knobs that are not part
// of the immutable prompt specification.
type askConfig struct {
	question   domain.Question
	validators []validate.Validator
	confirm    bool
}

// AskOption configures a single prompt call.
type AskOption func(*askConfig)

// WithDefault returns value on an empty submission; validators are
// skipped for defaults.
func WithDefault(value string) AskOption {
	return func(c *askConfig) {
		c.question.Default = value
		c.question.HasDefault = true
	}
}

// WithMaxAttempts bounds the retry loop. Zero means unbounded.
func WithMaxAttempts(n int) AskOption {
	return func(c *askConfig) { c.question.MaxAttempts = n }
}

// WithHelp attaches help text, shown when the user submits "?".
func WithHelp(text string) AskOption {
	return func(c *askConfig) { c.question.Help = text }
}

// WithHint appends a short usage hint to the prompt line.
func WithHint(text string) AskOption {
	return func(c *askConfig) { c.question.Hint = text }
}

// WithField names the value being collected for error messages.
func WithField(name string) AskOption {
	return func(c *askConfig) { c.question.Field = name }
}

// WithValidators appends validators to the chain for this prompt.
func WithValidators(validators ...validate.Validator) AskOption {
	return func(c *askConfig) { c.validators = append(c.validators, validators...) }
}

// Optional allows an empty submission to pass through as "".
func Optional() AskOption {
	return func(c *askConfig) { c.question.Required = false }
}

// WithConfirmation makes secret prompts ask twice and compare.
func WithConfirmation() AskOption {
	return func(c *askConfig) { c.confirm = true }
}

func newAskConfig(prompt string, opts ...AskOption) askConfig {
	cfg := askConfig{question: domain.Question{Prompt: prompt, Required: true}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Ask prompts for free text and returns the accepted value.
func (a *Asker) Ask(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	cfg := newAskConfig(prompt, opts...)
	return a.engine.Ask(ctx, cfg.question, cfg.validators...)
}

// AskAs prompts like Asker.Ask and converts the accepted value via parse.
// Pair parse with a matching validator so conversion cannot fail on
// accepted input. An empty accepted value (optional question answered
// with Enter) skips parse and yields the zero value.
func AskAs[T any](ctx context.Context, a *Asker, prompt string, parse func(string) (T, error), opts ...AskOption) (T, error) {
	var zero T
	raw, err := a.Ask(ctx, prompt, opts...)
	if err != nil {
		return zero, err
	}
	if raw == "" {
		// An optional question accepts an empty answer; there is
		// nothing to convert.
		return zero, nil
	}
	v, err := parse(raw)
	if err != nil {
		return zero, fmt.Errorf("convert %q: %w", raw, err)
	}
	return v, nil
}

// showError writes a styled error line, used by flows that run outside
// the engine loop (secret confirmation, multi-line collection).
func (a *Asker) showError(msg string) {
	if a.errorStyler != nil {
		msg = a.errorStyler(msg)
	}
	fmt.Fprintln(a.out, msg)
}
