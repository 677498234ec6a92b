package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/pkg/adapters/term"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/validate"
)

var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Prompt for one validated value",
	Long: `Prompts on stderr, validates the answer, and prints the accepted value
to stdout so shell scripts can capture it:

  EMAIL=$(tendril ask --kind email "Work email")
  PORT=$(tendril ask --kind int --default 8080 "Port")`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsk(cmd, args[0])
	},
}

func init() {
	askCmd.Flags().String("kind", "text", "Value kind: text, username, fullname, email, url, path, slug, int, float, percent, year, age, bool, select, password, pin, phone")
	askCmd.Flags().String("default", "", "Value returned on an empty answer")
	askCmd.Flags().Int("attempts", 0, "Maximum attempts before giving up (0 = unlimited)")
	askCmd.Flags().Bool("optional", false, "Allow an empty answer")
	askCmd.Flags().Bool("confirm", false, "Ask secrets twice and compare")
	askCmd.Flags().String("help-text", "", "Help shown when the user types '?'")
	askCmd.Flags().String("hint", "", "Short hint appended to the prompt")
	askCmd.Flags().StringSlice("options", nil, "Options for --kind select")
	askCmd.Flags().String("country", "", "Country code for --kind phone (ISO 3166-1 alpha-2, e.g. US)")

	rootCmd.AddCommand(askCmd)
}

func newAsker(cmd *cobra.Command) *tendril.Asker {
	debug, _ := cmd.Flags().GetBool("debug")
	plain, _ := cmd.Flags().GetBool("plain")

	logger := logging.NewNop()
	if debug {
		logger = logging.New(slog.LevelDebug)
	}

	// Prompts go to stderr; stdout carries only the accepted value.
	opts := []tendril.Option{
		tendril.WithSource(term.New(os.Stdin, os.Stderr)),
		tendril.WithOutput(os.Stderr),
		tendril.WithLogger(logger),
	}
	if plain {
		opts = append(opts, tendril.WithPlainOutput())
	}
	return tendril.New(opts...)
}

func runAsk(cmd *cobra.Command, prompt string) error {
	ask := newAsker(cmd)
	ctx := context.Background()

	kind, _ := cmd.Flags().GetString("kind")
	def, _ := cmd.Flags().GetString("default")
	attempts, _ := cmd.Flags().GetInt("attempts")
	optional, _ := cmd.Flags().GetBool("optional")
	confirm, _ := cmd.Flags().GetBool("confirm")
	helpText, _ := cmd.Flags().GetString("help-text")
	hint, _ := cmd.Flags().GetString("hint")
	options, _ := cmd.Flags().GetStringSlice("options")
	country, _ := cmd.Flags().GetString("country")

	var askOpts []tendril.AskOption
	if cmd.Flags().Changed("default") {
		askOpts = append(askOpts, tendril.WithDefault(def))
	}
	if attempts > 0 {
		askOpts = append(askOpts, tendril.WithMaxAttempts(attempts))
	}
	if optional {
		askOpts = append(askOpts, tendril.Optional())
	}
	if confirm {
		askOpts = append(askOpts, tendril.WithConfirmation())
	}
	if helpText != "" {
		askOpts = append(askOpts, tendril.WithHelp(helpText))
	}
	if hint != "" {
		askOpts = append(askOpts, tendril.WithHint(hint))
	}

	value, err := askValue(ctx, ask, kind, prompt, options, country, askOpts)
	if err != nil {
		var exhausted *domain.ExhaustedAttemptsError
		if errors.As(err, &exhausted) || errors.Is(err, domain.ErrCancelled) {
			return err
		}
		return fmt.Errorf("ask failed: %w", err)
	}

	fmt.Println(value)
	return nil
}

func askValue(ctx context.Context, ask *tendril.Asker, kind, prompt string, options []string, country string, opts []tendril.AskOption) (string, error) {
	switch kind {
	case "text":
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
		n, err := ask.Int(ctx, prompt, opts...)
		return fmt.Sprint(n), err
	case "float":
		n, err := ask.Float(ctx, prompt, opts...)
		return fmt.Sprint(n), err
	case "percent":
		n, err := ask.Percent(ctx, prompt, opts...)
		return fmt.Sprint(n), err
	case "year":
		n, err := ask.Year(ctx, prompt, opts...)
		return fmt.Sprint(n), err
	case "age":
		n, err := ask.Age(ctx, prompt, opts...)
		return fmt.Sprint(n), err
	case "bool":
		b, err := ask.Confirm(ctx, prompt, opts...)
		return fmt.Sprint(b), err
	case "select":
		return ask.Select(ctx, prompt, options, opts...)
	case "password":
		return ask.Password(ctx, prompt, opts...)
	case "pin":
		return ask.PIN(ctx, prompt, opts...)
	case "phone":
		return ask.Ask(ctx, prompt, append(opts, tendril.WithValidators(validate.PhoneNumber(country)))...)
	}
	return "", fmt.Errorf("unknown kind %q", kind)
}
