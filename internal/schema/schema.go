// Package schema loads and validates schema documents for dotenv
// validation. Documents are YAML or JSON (with comments and trailing commas
// tolerated), carrying the shape:
//
//	required:
//	  - DATABASE_URL
//	variables:
//	  PORT:
//	    type: number
//	    default: 3000
//
// The structure of the document itself is validated before it is handed to
// dotenv.Validate, so a typo in a type name is reported against the schema
// rather than against every value it would have converted.
package schema

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/nauticalab/envfile-engine/internal/dotenv"
)

// Package-level validator used by Validate.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("dotenv_type", validateTypeName); err != nil {
		panic(fmt.Errorf("register validator dotenv_type: %w", err))
	}
}

// validateTypeName implements the "dotenv_type" tag: the field must name one
// of the supported variable types, compared case-insensitively.
func validateTypeName(fl validator.FieldLevel) bool {
	name, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return dotenv.IsSupportedType(name)
}

// Load reads a schema document from fsys. The format is chosen by file
// extension: .yaml/.yml parse as YAML, everything else as JSON with comments
// allowed. The loaded document is structurally validated before return.
func Load(fsys afero.Fs, path string) (*dotenv.Schema, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var schema *dotenv.Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		schema, err = ParseYAML(data)
	default:
		schema, err = ParseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid schema document %s: %w", path, err)
	}

	return schema, nil
}

// ParseYAML parses and validates a YAML schema document.
func ParseYAML(data []byte) (*dotenv.Schema, error) {
	var schema dotenv.Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := Validate(&schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// ParseJSON parses and validates a JSON schema document. Comments and
// trailing commas are stripped first, so .jsonc documents parse too.
func ParseJSON(data []byte) (*dotenv.Schema, error) {
	var schema dotenv.Schema
	if err := json.Unmarshal(jsonc.ToJSON(data), &schema); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := Validate(&schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// Validate checks the structure of a schema document: every required entry
// is non-empty and every declared variable names a supported type. A nil
// schema is a contract violation.
func Validate(schema *dotenv.Schema) error {
	if schema == nil {
		return dotenv.NewInputError("schema must not be nil")
	}
	if err := validate.Struct(schema); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError renders go-playground/validator errors as concise,
// user-facing text.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var errorMessages []string
	for _, fieldError := range validationErrors {
		errorMessages = append(errorMessages, formatFieldError(fieldError))
	}

	return fmt.Errorf("schema validation failed:\n  - %s",
		strings.Join(errorMessages, "\n  - "))
}

// formatFieldError creates user-friendly error messages for field validation failures
func formatFieldError(fieldError validator.FieldError) string {
	field := fieldError.Field()
	value := fieldError.Value()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", field)
	case "dotenv_type":
		return fmt.Sprintf("'%s' must be one of %s, got '%v'",
			field, strings.Join(dotenv.SupportedTypes, ", "), value)
	default:
		return fmt.Sprintf("'%s' failed validation '%s', got '%v'", field, fieldError.Tag(), value)
	}
}
