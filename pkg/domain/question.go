package domain

// Question is the immutable specification of one prompt: what to show,
// how to read the answer, and how many attempts the retry loop gets.
type Question struct {
	// Prompt is the text shown to the user.
	Prompt string

	// Field names the value being collected; it appears in error
	// messages ("no input provided for email"). Empty falls back to a
	// generic message.
	Field string

	// Default is returned on an empty submission when HasDefault is
	// set. Defaults bypass the validators.
	Default    string
	HasDefault bool

	// Help is shown when the user submits "?". Showing help does not
	// consume an attempt.
	Help string

	// Hint is a short usage note appended to the prompt line.
	Hint string

	// Secret reads the answer without echo and without trimming.
	Secret bool

	// Required re-prompts on empty submissions. A non-required question
	// accepts an empty answer as "".
	Required bool

	// MaxAttempts bounds the retry loop. Zero means unbounded.
	MaxAttempts int
}

// FieldName returns Field, falling back to the prompt text so error
// messages always name what was being asked.
func (q Question) FieldName() string {
	if q.Field != "" {
		return q.Field
	}
	return q.Prompt
}
