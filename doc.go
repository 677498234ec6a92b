/*
Package tendril is a small library for collecting validated input from a
terminal. It repeatedly asks a question, reads a line (or a hidden secret),
runs an ordered list of validators, and either returns the accepted value
or re-prompts with the rejection reason until an optional attempt budget
runs out.

# Concept

Tendril separates the prompt loop from the input source. The engine only
knows how to ask, read and validate; where the text comes from is an
injected Source. The default source is the process terminal, and a
scripted in-memory source is provided for tests and automation.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/tendril"
		"github.com/aretw0/tendril/pkg/validate"
	)

	func main() {
		ask := tendril.New()
		ctx := context.Background()

		age, err := ask.Int(ctx, "Enter age",
			tendril.WithValidators(validate.Age(0, 120)),
			tendril.WithMaxAttempts(3),
		)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("age:", age)
	}

Validators are plain functions from raw text to accept-or-reject; they
compose left to right and the first rejection short-circuits the chain.
Custom rules slot in next to the built-ins:

	even := func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n%2 != 0 {
			return validate.Reject("must be an even number")
		}
		return nil
	}
	n, err := ask.Int(ctx, "Pick an even number", tendril.WithValidators(even))

For multi-field flows, pkg/form runs declarative YAML-defined forms on
top of the same engine.
*/
package tendril
