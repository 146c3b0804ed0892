package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// schema compiles the embedded configuration schema once.
func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("config: failed to parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("config.json", doc); err != nil {
			compileErr = fmt.Errorf("config: failed to add schema resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile("config.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("config: failed to compile schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// Load reads a YAML document from r and layers it over DefaultConfig.
// Keys that are absent keep their defaults. An empty document yields
// DefaultConfig unchanged.
//
// Errors:
//   - a *ValidationError (matching ErrInvalidConfig) if the document does
//     not match the schema: unknown keys, wrong types, bad enum values.
//   - any sentinel from Validate.
//   - wrapped read / YAML syntax errors.
func Load(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("config: read: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cfg, fmt.Errorf("config: parse yaml: %w", err)
	}
	if doc == nil {
		return cfg, nil
	}
	if err := validateDocument(doc); err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// LoadFile opens path and passes it to Load.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// validateDocument round-trips the YAML value through JSON so the validator
// sees plain JSON types, then checks it against the embedded schema.
func validateDocument(doc any) error {
	sch, err := schema()
	if err != nil {
		return err
	}

	// Mappings with non-string keys have no JSON form and are never valid.
	raw, err := json.Marshal(doc)
	if err != nil {
		return &ValidationError{Err: err}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("config: failed to parse document: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
