// Package validate provides the validator library used by the prompt
// engine. A Validator is a pure function from raw text to accept or
// reject-with-reason; validators compose left to right with Chain, and
// the first rejection short-circuits the sequence.
package validate
