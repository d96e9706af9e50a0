// Package validation checks configuration documents against JSON schemas
// embedded in the binary.
package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.schema.json
var embedded embed.FS

// CatalogSchema validates catalog override files
const CatalogSchema = "catalog.schema.json"

// ErrSchemaViolation wraps every document that fails its schema
var ErrSchemaViolation = errors.New("schema validation failed")

// SchemaValidator validates documents against named schemas
type SchemaValidator interface {
	// ValidateBytes validates a JSON document
	ValidateBytes(data []byte, schemaName string) error
	// ValidateValue validates an already decoded document, such as YAML
	// unmarshalled into interface{}
	ValidateValue(doc interface{}, schemaName string) error
}

type validator struct {
	fsys fs.FS

	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

var (
	defaultValidator SchemaValidator
	defaultOnce      sync.Once
)

// Default returns a shared validator over the embedded schemas
func Default() SchemaValidator {
	defaultOnce.Do(func() {
		defaultValidator = NewSchemaValidator(embedded)
	})
	return defaultValidator
}

// NewSchemaValidator creates a validator reading schemas from fsys. Schema
// names are paths under a schemas/ directory in fsys.
func NewSchemaValidator(fsys fs.FS) SchemaValidator {
	return &validator{
		fsys:     fsys,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrSchemaViolation, err)
	}
	return v.validate(doc, schemaName)
}

func (v *validator) ValidateValue(doc interface{}, schemaName string) error {
	// Round-trip through JSON so numbers and maps take the shapes the
	// schema engine expects
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: document is not JSON compatible: %v", ErrSchemaViolation, err)
	}
	return v.ValidateBytes(data, schemaName)
}

func (v *validator) validate(doc interface{}, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}
	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema compiles a schema once and caches it
func (v *validator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	raw, err := fs.ReadFile(v.fsys, "schemas/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	if err := v.compiler.AddResource(name, schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := v.compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// formatValidationError lists every leaf failure with its document location
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("%w:\n%s", ErrSchemaViolation, strings.Join(lines, "\n"))
	}
	return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if keywords := err.ErrorKind.KeywordPath(); len(keywords) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywords, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
