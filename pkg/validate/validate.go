package validate

import (
	"fmt"
	"strings"

	"github.com/aretw0/tendril/pkg/domain"
)

// Validator checks a raw input value. A nil return accepts the value. A
// *domain.ValidationError rejects it with a reason shown to the user.
// Any other error is a failure of the validator itself and propagates
// unchanged through the engine.
type Validator func(value string) error

// Chain composes validators left to right. The first rejection wins and
// later validators are not invoked. Nil entries are skipped.
func Chain(validators ...Validator) Validator {
	return func(value string) error {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Optional wraps a validator so blank values always pass.
func Optional(inner Validator) Validator {
	return func(value string) error {
		if strings.TrimSpace(value) == "" || inner == nil {
			return nil
		}
		return inner(value)
	}
}

// Reject builds the rejection error validators report.
func Reject(reason string) error {
	return &domain.ValidationError{Reason: reason}
}

// Rejectf builds a formatted rejection error.
func Rejectf(format string, args ...any) error {
	return &domain.ValidationError{Reason: fmt.Sprintf(format, args...)}
}
