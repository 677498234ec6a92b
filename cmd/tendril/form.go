package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/pkg/form"
)

var formCmd = &cobra.Command{
	Use:   "form [file.yaml]",
	Short: "Run a YAML-defined form and print the answers as JSON",
	Long: `Prompts for every field of a YAML form definition and prints the
collected answers as a JSON object on stdout:

  tendril form signup.yaml > answers.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, path string) error {
	f, err := form.Load(path)
	if err != nil {
		return err
	}

	ask := newAsker(cmd)
	if f.Title != "" {
		fmt.Fprintln(os.Stderr, f.Title)
	}

	values, err := f.Run(context.Background(), ask)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
