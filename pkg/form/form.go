package form

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Form is a parsed form definition.
type Form struct {
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`
}

// Field describes one prompt of a form. Spec carries the kind-specific
// constraints and is decoded per kind when the field runs.
type Field struct {
	Name     string         `yaml:"name"`
	Prompt   string         `yaml:"prompt"`
	Kind     string         `yaml:"kind"`
	Default  *string        `yaml:"default"`
	Required *bool          `yaml:"required"`
	Help     string         `yaml:"help"`
	Hint     string         `yaml:"hint"`
	Attempts int            `yaml:"attempts"`
	Spec     map[string]any `yaml:"spec"`
}

var knownKinds = map[string]bool{
	"text": true, "username": true, "fullname": true, "email": true,
	"url": true, "path": true, "slug": true, "int": true, "float": true,
	"percent": true, "year": true, "age": true, "bool": true,
	"select": true, "password": true, "pin": true, "phone": true,
	"date": true,
}

// Parse decodes and checks a form definition.
func Parse(r io.Reader) (*Form, error) {
	var f Form
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode form: %w", err)
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads a form definition from a file.
func Load(path string) (*Form, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open form: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

func (f *Form) check() error {
	if len(f.Fields) == 0 {
		return fmt.Errorf("form has no fields")
	}
	seen := map[string]bool{}
	for i, field := range f.Fields {
		if field.Name == "" {
			return fmt.Errorf("field %d: missing name", i)
		}
		if seen[field.Name] {
			return fmt.Errorf("field %q: duplicate name", field.Name)
		}
		seen[field.Name] = true
		kind := field.Kind
		if kind == "" {
			kind = "text"
		}
		if !knownKinds[kind] {
			return fmt.Errorf("field %q: unknown kind %q", field.Name, field.Kind)
		}
	}
	return nil
}
