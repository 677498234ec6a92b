// Package form runs declarative multi-field prompts defined in YAML.
// Each field names a prompt kind (text, email, int, select, password...)
// plus kind-specific constraints; Run asks the fields in declaration
// order through a tendril.Asker and returns the typed values by name.
package form
