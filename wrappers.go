package tendril

import (
	"context"
	"strconv"
	"strings"

	"github.com/aretw0/tendril/pkg/validate"
)

// prepend puts wrapper-supplied validators ahead of caller options so the
// format check always runs first.
func prepend(v validate.Validator, opts []AskOption) []AskOption {
	return append([]AskOption{WithValidators(v)}, opts...)
}

// Text prompts for plain text.
func (a *Asker) Text(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	return a.Ask(ctx, prompt, opts...)
}

// Username prompts for a strict (ASCII) username. Pass a relaxed
// validator via WithValidators to allow Unicode identifiers.
func (a *Asker) Username(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	return a.Ask(ctx, prompt, prepend(validate.Username(true), opts)...)
}

// FullName prompts for a personal name.
func (a *Asker) FullName(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	return a.Ask(ctx, prompt, prepend(validate.FullName(), opts)...)
}

// Email prompts for an email address and lowercases the result.
func (a *Asker) Email(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	v, err := a.Ask(ctx, prompt, prepend(validate.Email(), opts)...)
	return strings.ToLower(v), err
}

// URL prompts for a web, ftp or file URL.
func (a *Asker) URL(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	return a.Ask(ctx, prompt, prepend(validate.URL(), opts)...)
}

// FilePath prompts for an absolute Unix or Windows path.
func (a *Asker) FilePath(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	return a.Ask(ctx, prompt, prepend(validate.FilePath(), opts)...)
}

// Slug prompts for a URL-friendly identifier and lowercases the result.
func (a *Asker) Slug(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	v, err := a.Ask(ctx, prompt, prepend(validate.Slug(), opts)...)
	return strings.ToLower(v), err
}

// Int prompts for a whole number.
func (a *Asker) Int(ctx context.Context, prompt string, opts ...AskOption) (int, error) {
	return AskAs(ctx, a, prompt, parseInt, prepend(validate.Integer(), opts)...)
}

// Float prompts for a decimal number.
func (a *Asker) Float(ctx context.Context, prompt string, opts ...AskOption) (float64, error) {
	return AskAs(ctx, a, prompt, parseFloat, prepend(validate.Float(), opts)...)
}

// Percent prompts for a percentage (0-100, '%' suffix allowed).
func (a *Asker) Percent(ctx context.Context, prompt string, opts ...AskOption) (float64, error) {
	return AskAs(ctx, a, prompt, parsePercent, prepend(validate.Percentage(), opts)...)
}

// Year prompts for a four-digit year between 1900 and 2099.
func (a *Asker) Year(ctx context.Context, prompt string, opts ...AskOption) (int, error) {
	return AskAs(ctx, a, prompt, parseInt, prepend(validate.Year(1900, 2099), opts)...)
}

// Age prompts for an age between 0 and 150.
func (a *Asker) Age(ctx context.Context, prompt string, opts ...AskOption) (int, error) {
	return AskAs(ctx, a, prompt, parseInt, prepend(validate.Age(0, 150), opts)...)
}

// Confirm prompts for a yes/no answer. Use WithDefault("yes") or
// WithDefault("no") to make Enter pick a side.
func (a *Asker) Confirm(ctx context.Context, prompt string, opts ...AskOption) (bool, error) {
	return AskAs(ctx, a, prompt, parseBool, prepend(validate.Boolean(), opts)...)
}

// Agree prompts for explicit consent (agree/decline and friends).
func (a *Asker) Agree(ctx context.Context, prompt string, opts ...AskOption) (bool, error) {
	return AskAs(ctx, a, prompt, parseBool, prepend(validate.Agreement(), opts)...)
}

func parseInt(v string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(v), "+"))
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

func parsePercent(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "%"), 64)
}

func parseBool(v string) (bool, error) {
	b, ok := validate.ParseBool(v)
	if !ok {
		return false, strconv.ErrSyntax
	}
	return b, nil
}
