package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/pkg/adapters/memory"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/validate"
)

func TestAskAcceptsFirstValidInput(t *testing.T) {
	src := memory.New("hello")
	buf := &bytes.Buffer{}
	eng := New(src, buf)

	got, err := eng.Ask(context.Background(), domain.Question{Prompt: "Say hi", Required: true})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, 1, src.Reads())
	assert.Contains(t, buf.String(), "Say hi: ")
}

func TestAskRetriesWithRejectionReason(t *testing.T) {
	src := memory.New("abc", "200", "30")
	buf := &bytes.Buffer{}
	eng := New(src, buf)

	q := domain.Question{Prompt: "Enter age", Required: true}
	got, err := eng.Ask(context.Background(), q,
		validate.Integer(),
		validate.Range(0, 120, true, true),
	)
	require.NoError(t, err)
	assert.Equal(t, "30", got)
	assert.Equal(t, 3, src.Reads())

	out := buf.String()
	assert.Contains(t, out, "must be a whole number")
	assert.Contains(t, out, "must be less than or equal to 120")
}

func TestAskShortCircuitsValidatorChain(t *testing.T) {
	var secondCalled bool
	first := func(string) error { return validate.Reject("nope") }
	second := func(string) error {
		secondCalled = true
		return nil
	}

	src := memory.New("x", "y")
	eng := New(src, &bytes.Buffer{})

	q := domain.Question{Prompt: "Value", Required: true, MaxAttempts: 2}
	_, err := eng.Ask(context.Background(), q, first, second)

	var exhausted *domain.ExhaustedAttemptsError
	require.ErrorAs(t, err, &exhausted)
	assert.False(t, secondCalled, "second validator must not run after a rejection")
}

func TestAskExhaustsBoundedAttempts(t *testing.T) {
	src := memory.New("a", "b", "c", "d")
	eng := New(src, &bytes.Buffer{})

	q := domain.Question{Prompt: "Value", Required: true, MaxAttempts: 3}
	_, err := eng.Ask(context.Background(), q, validate.Integer())

	var exhausted *domain.ExhaustedAttemptsError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	// The source is read exactly MaxAttempts times, never more.
	assert.Equal(t, 3, src.Reads())
}

func TestAskEmptyInputUsesDefaultWithoutValidators(t *testing.T) {
	var called bool
	tracker := func(string) error {
		called = true
		return validate.Reject("should not run")
	}

	src := memory.New("")
	eng := New(src, &bytes.Buffer{})

	q := domain.Question{Prompt: "Port", Default: "8080", HasDefault: true, Required: true}
	got, err := eng.Ask(context.Background(), q, tracker)
	require.NoError(t, err)
	assert.Equal(t, "8080", got)
	assert.False(t, called, "validators must be skipped for defaults")
}

func TestAskEmptyRequiredInputRetries(t *testing.T) {
	src := memory.New("", "", "ok")
	buf := &bytes.Buffer{}
	eng := New(src, buf)

	q := domain.Question{Prompt: "Name", Field: "name", Required: true}
	got, err := eng.Ask(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, src.Reads())
	assert.Contains(t, buf.String(), "no input provided for name")
}

func TestAskOptionalEmptyInputPasses(t *testing.T) {
	src := memory.New("")
	eng := New(src, &bytes.Buffer{})

	got, err := eng.Ask(context.Background(), domain.Question{Prompt: "Nickname"})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestAskPropagatesValidatorFailure(t *testing.T) {
	boom := errors.New("boom")
	failing := func(string) error { return boom }

	src := memory.New("anything", "never read")
	eng := New(src, &bytes.Buffer{})

	q := domain.Question{Prompt: "Value", Required: true}
	_, err := eng.Ask(context.Background(), q, failing)
	require.ErrorIs(t, err, boom)
	// A validator failure is not a rejection: no retry happened.
	assert.Equal(t, 1, src.Reads())
}

func TestAskHelpDoesNotConsumeAttempt(t *testing.T) {
	src := memory.New("?", "42")
	buf := &bytes.Buffer{}
	eng := New(src, buf)

	q := domain.Question{Prompt: "Number", Required: true, MaxAttempts: 1, Help: "Any whole number."}
	got, err := eng.Ask(context.Background(), q, validate.Integer())
	require.NoError(t, err)
	assert.Equal(t, "42", got)
	assert.Contains(t, buf.String(), "Any whole number.")
}

func TestAskSecretReadsWithoutEcho(t *testing.T) {
	src := memory.New(" s3cret ")
	eng := New(src, &bytes.Buffer{})

	q := domain.Question{Prompt: "Password", Secret: true, Required: true}
	got, err := eng.Ask(context.Background(), q)
	require.NoError(t, err)
	// Secrets are returned verbatim; spaces may be intentional.
	assert.Equal(t, " s3cret ", got)
	assert.Equal(t, 1, src.SecretReads())
}

func TestAskCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := New(memory.New("x"), &bytes.Buffer{})
	_, err := eng.Ask(ctx, domain.Question{Prompt: "Value", Required: true})
	require.ErrorIs(t, err, domain.ErrCancelled)
}

func TestAskCancelledOnSourceEOF(t *testing.T) {
	eng := New(memory.New(), &bytes.Buffer{})
	_, err := eng.Ask(context.Background(), domain.Question{Prompt: "Value", Required: true})
	require.ErrorIs(t, err, domain.ErrCancelled)
}

func TestPromptLineFormat(t *testing.T) {
	src := memory.New("v")
	buf := &bytes.Buffer{}
	eng := New(src, buf)

	q := domain.Question{
		Prompt:     "City",
		Hint:       "e.g. Lisbon",
		Default:    "Porto",
		HasDefault: true,
		Required:   true,
	}
	_, err := eng.Ask(context.Background(), q)
	require.NoError(t, err)

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "City (e.g. Lisbon) [Porto]: "), "got %q", line)
}
