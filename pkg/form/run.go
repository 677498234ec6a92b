package form

import (
	"context"
	"fmt"
	"math"
	"regexp"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/pkg/validate"
)

// Kind-specific constraint blocks, decoded from Field.Spec.
type textSpec struct {
	MinLength int    `mapstructure:"min_length"`
	MaxLength int    `mapstructure:"max_length"`
	Pattern   string `mapstructure:"pattern"`
}

type numberSpec struct {
	Min *float64 `mapstructure:"min"`
	Max *float64 `mapstructure:"max"`
}

type selectSpec struct {
	Options []string `mapstructure:"options"`
	Multi   bool     `mapstructure:"multi"`
}

type passwordSpec struct {
	MinLength int  `mapstructure:"min_length"`
	Confirm   bool `mapstructure:"confirm"`
}

type pinSpec struct {
	MinDigits int `mapstructure:"min_digits"`
	MaxDigits int `mapstructure:"max_digits"`
}

type phoneSpec struct {
	Country string `mapstructure:"country"`
}

type dateSpec struct {
	Layout string `mapstructure:"layout"`
}

// Run asks every field in declaration order and returns the collected
// values by field name. Numeric kinds yield int or float64, bool yields
// bool, multi-selects yield []string; everything else is a string.
// Optional fields answered with just Enter are left out of the map.
func (f *Form) Run(ctx context.Context, ask *tendril.Asker) (map[string]any, error) {
	values := make(map[string]any, len(f.Fields))
	for _, field := range f.Fields {
		value, err := field.run(ctx, ask)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}
		if value == nil {
			continue
		}
		values[field.Name] = value
	}
	return values, nil
}

func (fd *Field) run(ctx context.Context, ask *tendril.Asker) (any, error) {
	prompt := fd.Prompt
	if prompt == "" {
		prompt = fd.Name
	}

	opts := []tendril.AskOption{tendril.WithField(fd.Name)}
	if fd.Default != nil {
		opts = append(opts, tendril.WithDefault(*fd.Default))
	}
	optional := fd.Required != nil && !*fd.Required
	if optional {
		opts = append(opts, tendril.Optional())
	}
	if fd.Help != "" {
		opts = append(opts, tendril.WithHelp(fd.Help))
	}
	if fd.Hint != "" {
		opts = append(opts, tendril.WithHint(fd.Hint))
	}
	if fd.Attempts > 0 {
		opts = append(opts, tendril.WithMaxAttempts(fd.Attempts))
	}

	// Validators never run on an empty optional answer, so a recording
	// validator fires only when the user actually typed something. That
	// tells Run apart "answered with the zero value" from "skipped".
	answered := fd.Default != nil
	if optional && !answered {
		opts = append(opts, tendril.WithValidators(func(string) error {
			answered = true
			return nil
		}))
	}

	value, err := fd.collect(ctx, ask, prompt, opts)
	if err != nil {
		return nil, err
	}
	if optional && !answered {
		return nil, nil
	}
	return value, nil
}

func (fd *Field) collect(ctx context.Context, ask *tendril.Asker, prompt string, opts []tendril.AskOption) (any, error) {
	switch fd.Kind {
	case "", "text":
		var spec textSpec
		if err := fd.decodeSpec(&spec); err != nil {
			return nil, err
		}
		if spec.MinLength > 0 || spec.MaxLength > 0 {
			opts = leadingValidators(opts, validate.Length(spec.MinLength, spec.MaxLength))
		}
		if spec.Pattern != "" {
			re, err := regexp.Compile(spec.Pattern)
			if err != nil {
				return nil, fmt.Errorf("bad pattern: %w", err)
			}
			opts = leadingValidators(opts, validate.Match(re, "value does not match the required format"))
		}
		return ask.Text(ctx, prompt, opts...)

	case "username":
		return ask.Username(ctx, prompt, opts...)
	case "fullname":
		return ask.FullName(ctx, prompt, opts...)
	case "email":
		return ask.Email(ctx, prompt, opts...)
	case "url":
		return ask.URL(ctx, prompt, opts...)
	case "path":
		return ask.FilePath(ctx, prompt, opts...)
	case "slug":
		return ask.Slug(ctx, prompt, opts...)

	case "int":
		var spec numberSpec
		if err := fd.decodeSpec(&spec); err != nil {
			return nil, err
		}
		if spec.Min != nil || spec.Max != nil {
			opts = leadingValidators(opts, rangeValidator(spec))
		}
		return ask.Int(ctx, prompt, opts...)

	case "float":
		var spec numberSpec
		if err := fd.decodeSpec(&spec); err != nil {
			return nil, err
		}
		if spec.Min != nil || spec.Max != nil {
			opts = leadingValidators(opts, rangeValidator(spec))
		}
		return ask.Float(ctx, prompt, opts...)

	case "percent":
		return ask.Percent(ctx, prompt, opts...)
	case "year":
		return ask.Year(ctx, prompt, opts...)
	case "age":
		return ask.Age(ctx, prompt, opts...)
	case "bool":
		return ask.Confirm(ctx, prompt, opts...)

	case "select":
		var spec selectSpec
		if err := fd.decodeSpec(&spec); err != nil {
			return nil, err
		}
		if len(spec.Options) == 0 {
			return nil, fmt.Errorf("select field needs options")
		}
		if spec.Multi {
			return ask.MultiSelect(ctx, prompt, spec.Options, opts...)
		}
		return ask.Select(ctx, prompt, spec.Options, opts...)

	case "password":
		var spec passwordSpec
		if err := fd.decodeSpec(&spec); err != nil {
			return nil, err
		}
		// The policy is attached here explicitly; Password only falls
		// back to the default policy when no validators are present,
		// and the field runner may have added bookkeeping ones.
		policy := validate.DefaultPasswordPolicy()
		if spec.MinLength > 0 {
			policy.MinLength = spec.MinLength
		}
		opts = leadingValidators(opts, validate.Password(policy))
		if spec.Confirm {
			opts = append(opts, tendril.WithConfirmation())
		}
		return ask.Password(ctx, prompt, opts...)

	case "pin":
		var spec pinSpec
		if err := fd.decodeSpec(&spec); err != nil {
			return nil, err
		}
		if spec.MinDigits > 0 || spec.MaxDigits > 0 {
			min, max := spec.MinDigits, spec.MaxDigits
			if min == 0 {
				min = 4
			}
			if max == 0 {
				max = 12
			}
			opts = leadingValidators(opts, validate.PIN(min, max))
			return ask.Secret(ctx, prompt, opts...)
		}
		return ask.PIN(ctx, prompt, opts...)

	case "phone":
		var spec phoneSpec
		if err := fd.decodeSpec(&spec); err != nil {
			return nil, err
		}
		opts = leadingValidators(opts, validate.PhoneNumber(spec.Country))
		return ask.Ask(ctx, prompt, opts...)

	case "date":
		var spec dateSpec
		if err := fd.decodeSpec(&spec); err != nil {
			return nil, err
		}
		layout := spec.Layout
		if layout == "" {
			layout = "2006-01-02"
		}
		opts = append(leadingValidators(opts, validate.Date(layout)), tendril.WithHint(layout))
		return ask.Ask(ctx, prompt, opts...)
	}

	return nil, fmt.Errorf("unknown kind %q", fd.Kind)
}

// leadingValidators places kind validators ahead of the caller options,
// keeping the field runner's bookkeeping validator last in the chain so
// it only fires on a fully accepted value.
func leadingValidators(opts []tendril.AskOption, vs ...validate.Validator) []tendril.AskOption {
	return append([]tendril.AskOption{tendril.WithValidators(vs...)}, opts...)
}

func (fd *Field) decodeSpec(out any) error {
	if len(fd.Spec) == 0 {
		return nil
	}
	if err := mapstructure.Decode(fd.Spec, out); err != nil {
		return fmt.Errorf("decode spec: %w", err)
	}
	return nil
}

func rangeValidator(spec numberSpec) validate.Validator {
	min, max := math.Inf(-1), math.Inf(1)
	if spec.Min != nil {
		min = *spec.Min
	}
	if spec.Max != nil {
		max = *spec.Max
	}
	return validate.Range(min, max, true, true)
}
