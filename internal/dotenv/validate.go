package dotenv

import "sort"

// Schema declares which variables are required and how declared variables
// are typed. The yaml/json tags define the document shape consumed by the
// schema package; the validate tags drive its structural validation.
type Schema struct {
	// Required lists names that must be present with a non-empty value.
	Required []string `yaml:"required" json:"required" validate:"dive,required"`

	// Variables maps names to their type and optional default.
	Variables map[string]VariableSpec `yaml:"variables" json:"variables" validate:"dive"`
}

// VariableSpec describes a single declared variable.
type VariableSpec struct {
	// Type is one of the SupportedTypes names, compared case-insensitively.
	Type string `yaml:"type" json:"type" validate:"required,dotenv_type"`

	// Default is assigned as-is (already in final type) when the variable is
	// absent or empty. A nil Default means the variable is simply omitted.
	Default any `yaml:"default,omitempty" json:"default,omitempty"`
}

// Validate applies schema to env and returns the typed result:
//
//  1. Every name in schema.Required that is missing or empty is recorded as
//     a RequiredMissingError.
//  2. Every declared variable that is present and non-empty is converted to
//     its declared type; conversion failures are recorded and the key is
//     omitted from the result. Absent or empty declared variables take
//     their default when one is set, and are omitted otherwise.
//  3. Every key not named in schema.Variables passes through unchanged.
//
// Validation is fail-slow: all violations across all keys are collected and
// returned together in a single ValidationError. A nil schema is a contract
// violation and fails immediately with an InputError.
func Validate(env *Environment, schema *Schema) (*TypedEnvironment, error) {
	if schema == nil {
		return nil, NewInputError("schema must not be nil")
	}
	if env == nil {
		env = NewEnvironment()
	}

	var violations []error
	result := NewTypedEnvironment()

	for _, name := range schema.Required {
		if value, ok := env.Lookup(name); !ok || value == "" {
			violations = append(violations, &RequiredMissingError{Key: name})
		}
	}

	for _, key := range env.Keys() {
		spec, declared := schema.Variables[key]
		raw := env.Get(key)

		if !declared {
			result.Set(key, raw)
			continue
		}
		if raw == "" {
			if spec.Default != nil {
				result.Set(key, spec.Default)
			}
			continue
		}

		value, err := Convert(raw, spec.Type)
		if err != nil {
			violations = append(violations, tagConversionError(err, key, raw))
			continue
		}
		result.Set(key, value)
	}

	// Declared variables the environment never mentions still receive their
	// defaults. Sorted for deterministic output order.
	for _, name := range sortedVariableNames(schema.Variables) {
		if _, present := env.Lookup(name); present {
			continue
		}
		if spec := schema.Variables[name]; spec.Default != nil {
			result.Set(name, spec.Default)
		}
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return result, nil
}

// tagConversionError attaches the variable name and raw value to an error
// produced by Convert, which has no knowledge of either.
func tagConversionError(err error, key, raw string) error {
	switch e := err.(type) {
	case *TypeConversionError:
		return &TypeConversionError{Key: key, Raw: raw, Type: e.Type, Reason: e.Reason}
	case *UnsupportedTypeError:
		return &UnsupportedTypeError{Key: key, Type: e.Type}
	default:
		return err
	}
}

func sortedVariableNames(variables map[string]VariableSpec) []string {
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
