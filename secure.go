package tendril

import (
	"context"

	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/validate"
)

// Password prompts for a hidden password. The default composition policy
// applies unless the caller supplies validators. With WithConfirmation
// the value is read twice and must match.
func (a *Asker) Password(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	cfg := newAskConfig(prompt, opts...)
	cfg.question.Secret = true
	if len(cfg.validators) == 0 {
		cfg.validators = []validate.Validator{validate.Password(validate.DefaultPasswordPolicy())}
	}
	return a.askSecret(ctx, cfg)
}

// PIN prompts for a hidden 4-12 digit code.
func (a *Asker) PIN(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	cfg := newAskConfig(prompt, prepend(validate.PIN(4, 12), opts)...)
	cfg.question.Secret = true
	return a.askSecret(ctx, cfg)
}

// APIKey prompts for a hidden API key.
func (a *Asker) APIKey(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	cfg := newAskConfig(prompt, prepend(validate.APIKey(), opts)...)
	cfg.question.Secret = true
	return a.askSecret(ctx, cfg)
}

// Token prompts for a hidden bearer/JWT-style token.
func (a *Asker) Token(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	cfg := newAskConfig(prompt, prepend(validate.Token(), opts)...)
	cfg.question.Secret = true
	return a.askSecret(ctx, cfg)
}

// Secret prompts for hidden free text with no format constraints.
func (a *Asker) Secret(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	cfg := newAskConfig(prompt, opts...)
	cfg.question.Secret = true
	return a.askSecret(ctx, cfg)
}

// askSecret runs the engine loop and, when confirmation is requested,
// re-reads the value and compares. A mismatch restarts the round; bounded
// questions exhaust after MaxAttempts mismatched rounds.
func (a *Asker) askSecret(ctx context.Context, cfg askConfig) (string, error) {
	rounds := 0
	for {
		rounds++

		value, err := a.engine.Ask(ctx, cfg.question, cfg.validators...)
		if err != nil {
			return "", err
		}
		if !cfg.confirm {
			return value, nil
		}

		confirmQ := domain.Question{
			Prompt:      "Confirm " + cfg.question.Prompt,
			Field:       cfg.question.FieldName(),
			Secret:      true,
			Required:    true,
			MaxAttempts: cfg.question.MaxAttempts,
		}
		again, err := a.engine.Ask(ctx, confirmQ)
		if err != nil {
			return "", err
		}
		if value == again {
			return value, nil
		}

		a.showError("entries do not match, try again")
		if cfg.question.MaxAttempts > 0 && rounds >= cfg.question.MaxAttempts {
			return "", &domain.ExhaustedAttemptsError{Attempts: rounds}
		}
	}
}
