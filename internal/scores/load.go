package scores

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ReconcilePolicy decides what Load does with roster identifiers that are
// absent from an existing score file.
type ReconcilePolicy string

const (
	// ReconcileAdd adds missing identifiers at zero.
	ReconcileAdd ReconcilePolicy = "add"
	// ReconcileReject fails the load with a *MissingError.
	ReconcileReject ReconcilePolicy = "reject"
)

// Valid reports whether p is a known policy.
func (p ReconcilePolicy) Valid() bool {
	return p == ReconcileAdd || p == ReconcileReject
}

// scoreFileSchema describes the persisted format: a flat object of integers.
const scoreFileSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": {"type": "integer"}
}`

const schemaURL = "schema://scores.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Load reads the score file at path. When the file does not exist it
// returns a fresh store with every identifier in universe at zero. Any
// failure to read or parse an existing file is returned as a *LoadError.
func Load(path string, universe []string, policy ReconcilePolicy) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(universe), nil
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	m, err := Decode(raw)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	s := FromMap(m)

	switch policy {
	case ReconcileReject:
		if missing := s.Missing(universe); len(missing) > 0 {
			return nil, &MissingError{IDs: missing}
		}
	default:
		s.Ensure(universe)
	}
	return s, nil
}

// Decode validates raw against the score file schema and decodes it.
func Decode(raw []byte) (map[string]int, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := scoreSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var m map[string]int
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	return m, nil
}

func scoreSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(scoreFileSchema)))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
