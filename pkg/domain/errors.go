package domain

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user aborts input (EOF or interrupt).
var ErrCancelled = errors.New("input cancelled")

// EmptyInputError reports an empty submission for a required question
// without a default. The engine treats it as recoverable and re-prompts.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("no input provided for %s", e.Field)
	}
	return "no input provided"
}

// ValidationError reports a validator rejection. Reason is shown to the
// user verbatim before re-prompting.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

// ExhaustedAttemptsError ends the retry loop once a bounded question runs
// out of attempts. Unlike the other input errors it propagates to the caller.
type ExhaustedAttemptsError struct {
	Attempts int
}

func (e *ExhaustedAttemptsError) Error() string {
	return fmt.Sprintf("retry limit exceeded after %d attempts", e.Attempts)
}
