package tendril

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/tendril/pkg/validate"
)

// Select displays a numbered option list and prompts for a single choice,
// accepted either by its text (case-insensitive) or its 1-based number.
// The canonical option text is returned.
func (a *Asker) Select(ctx context.Context, prompt string, options []string, opts ...AskOption) (string, error) {
	if len(options) == 0 {
		return "", errors.New("select: no options provided")
	}
	a.writeOptions(options)

	raw, err := a.Ask(ctx, prompt, prepend(optionValidator(options), opts)...)
	if err != nil {
		return "", err
	}
	choice, _ := resolveOption(options, raw)
	return choice, nil
}

// MultiSelect prompts for a comma-separated set of choices and returns
// the canonical option texts in selection order, deduplicated.
func (a *Asker) MultiSelect(ctx context.Context, prompt string, options []string, opts ...AskOption) ([]string, error) {
	if len(options) == 0 {
		return nil, errors.New("select: no options provided")
	}
	a.writeOptions(options)

	raw, err := a.Ask(ctx, prompt, prepend(multiOptionValidator(options), opts)...)
	if err != nil {
		return nil, err
	}

	var choices []string
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		choice, _ := resolveOption(options, strings.TrimSpace(part))
		if !seen[choice] {
			seen[choice] = true
			choices = append(choices, choice)
		}
	}
	return choices, nil
}

func (a *Asker) writeOptions(options []string) {
	for i, opt := range options {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, opt)
	}
}

// resolveOption maps raw input to its canonical option text. An exact
// (case-insensitive) text match wins over the 1-based index reading, so
// options that are themselves numbers stay addressable by name.
func resolveOption(options []string, raw string) (string, bool) {
	for _, opt := range options {
		if strings.EqualFold(opt, raw) {
			return opt, true
		}
	}
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	return "", false
}

func optionValidator(options []string) validate.Validator {
	return func(value string) error {
		if _, ok := resolveOption(options, value); !ok {
			return validate.Rejectf("pick 1-%d or one of: %s", len(options), strings.Join(options, ", "))
		}
		return nil
	}
}

func multiOptionValidator(options []string) validate.Validator {
	single := optionValidator(options)
	return func(value string) error {
		parts := strings.Split(value, ",")
		if len(parts) == 0 {
			return validate.Reject("pick at least one option")
		}
		for _, part := range parts {
			if err := single(strings.TrimSpace(part)); err != nil {
				return err
			}
		}
		return nil
	}
}
