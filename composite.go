package tendril

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/validate"
)

// Credentials prompts for a username and a hidden password and validates
// the pair as a whole.
func (a *Asker) Credentials(ctx context.Context, opts ...AskOption) (domain.Credentials, error) {
	username, err := a.Username(ctx, "Username", append(opts, WithField("username"))...)
	if err != nil {
		return domain.Credentials{}, err
	}
	password, err := a.Password(ctx, "Password", append(opts, WithField("password"))...)
	if err != nil {
		return domain.Credentials{}, err
	}

	creds := domain.Credentials{Username: username, Password: password}
	if err := validate.CredentialsValid(creds, nil, nil); err != nil {
		return domain.Credentials{}, err
	}
	return creds, nil
}

// Address prompts for country, city and (optionally required) postal
// code.
func (a *Asker) Address(ctx context.Context, requirePostalCode bool, opts ...AskOption) (domain.Address, error) {
	country, err := a.Text(ctx, "Country", append(opts, WithField("country"))...)
	if err != nil {
		return domain.Address{}, err
	}
	city, err := a.Text(ctx, "City", append(opts, WithField("city"))...)
	if err != nil {
		return domain.Address{}, err
	}

	postalOpts := append(opts, WithField("postal_code"))
	if !requirePostalCode {
		postalOpts = append(postalOpts, Optional())
	}
	postal, err := a.Text(ctx, "Postal code", postalOpts...)
	if err != nil {
		return domain.Address{}, err
	}

	addr := domain.Address{Country: country, City: city, PostalCode: postal}
	if err := validate.AddressValid(addr, true, true, requirePostalCode); err != nil {
		return domain.Address{}, err
	}
	return addr, nil
}

// DateRange prompts for a start and end date in the given layout
// ("2006-01-02" style) and enforces their order. An out-of-order pair
// restarts the round; bounded prompts exhaust after maxAttempts rounds.
func (a *Asker) DateRange(ctx context.Context, layout string, maxAttempts int) (start, end string, err error) {
	rounds := 0
	for {
		rounds++

		start, err = a.Ask(ctx, "Start date",
			WithField("start_date"),
			WithHint(layout),
			WithValidators(validate.Date(layout)),
			WithMaxAttempts(maxAttempts),
		)
		if err != nil {
			return "", "", err
		}
		end, err = a.Ask(ctx, "End date",
			WithField("end_date"),
			WithHint(layout),
			WithValidators(validate.Date(layout)),
			WithMaxAttempts(maxAttempts),
		)
		if err != nil {
			return "", "", err
		}

		if err := validate.DateRangeOrdered(layout, start, end); err != nil {
			a.showError(err.Error())
			if maxAttempts > 0 && rounds >= maxAttempts {
				return "", "", &domain.ExhaustedAttemptsError{Attempts: rounds}
			}
			continue
		}
		return start, end, nil
	}
}

// MultiLine collects lines until an empty line and joins them with
// newlines. Validators from opts run against the joined text; a rejection
// restarts the collection.
func (a *Asker) MultiLine(ctx context.Context, prompt string, opts ...AskOption) (string, error) {
	cfg := newAskConfig(prompt, opts...)
	attempts := 0

	for {
		fmt.Fprintln(a.out, cfg.question.Prompt)
		fmt.Fprintln(a.out, "(finish with an empty line)")

		var lines []string
		for {
			line, err := a.source.ReadLine(ctx)
			if err != nil {
				return "", err
			}
			if line == "" {
				break
			}
			lines = append(lines, line)
		}
		attempts++
		text := strings.Join(lines, "\n")

		if text == "" {
			if cfg.question.HasDefault {
				return cfg.question.Default, nil
			}
			if !cfg.question.Required {
				return "", nil
			}
			a.showError((&domain.EmptyInputError{Field: cfg.question.FieldName()}).Error())
		} else if err := validate.Chain(cfg.validators...)(text); err != nil {
			var rejection *domain.ValidationError
			if !errors.As(err, &rejection) {
				return "", err
			}
			a.showError(rejection.Error())
		} else {
			return text, nil
		}

		if cfg.question.MaxAttempts > 0 && attempts >= cfg.question.MaxAttempts {
			return "", &domain.ExhaustedAttemptsError{Attempts: attempts}
		}
	}
}
