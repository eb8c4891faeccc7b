package dotenv

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Type names accepted by Convert and Schema variable declarations.
// Comparison is case-insensitive.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeJSON    = "json"
)

// SupportedTypes lists every valid type name.
var SupportedTypes = []string{TypeString, TypeNumber, TypeBoolean, TypeArray, TypeJSON}

// IsSupportedType reports whether name is a valid type name, ignoring case.
func IsSupportedType(name string) bool {
	switch strings.ToLower(name) {
	case TypeString, TypeNumber, TypeBoolean, TypeArray, TypeJSON:
		return true
	}
	return false
}

var truthyValues = map[string]bool{
	"true": true, "1": true, "yes": true, "on": true, "enabled": true,
}

var falsyValues = map[string]bool{
	"false": true, "0": true, "no": true, "off": true, "disabled": true,
}

// Convert coerces a raw string value to the named type:
//
//   - string: identity
//   - number: float64; the literals infinity, -infinity, and nan (any case)
//     map to the IEEE-754 specials
//   - boolean: true/1/yes/on/enabled and false/0/no/off/disabled
//   - array: comma-separated elements, trimmed, empties dropped
//   - json: any JSON value
//
// An unknown type name yields an UnsupportedTypeError; a value that cannot
// be coerced yields a TypeConversionError.
func Convert(value, typeName string) (any, error) {
	switch strings.ToLower(typeName) {
	case TypeString:
		return value, nil
	case TypeNumber:
		return convertNumber(value)
	case TypeBoolean:
		return convertBoolean(value)
	case TypeArray:
		return convertArray(value), nil
	case TypeJSON:
		return convertJSON(value)
	default:
		return nil, &UnsupportedTypeError{Type: typeName}
	}
}

func convertNumber(value string) (any, error) {
	s := strings.TrimSpace(value)
	switch strings.ToLower(s) {
	case "infinity":
		return math.Inf(1), nil
	case "-infinity":
		return math.Inf(-1), nil
	case "nan":
		return math.NaN(), nil
	}
	if s == "" {
		return nil, &TypeConversionError{Raw: value, Type: TypeNumber, Reason: "empty value"}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &TypeConversionError{Raw: value, Type: TypeNumber, Reason: "not a decimal number"}
	}
	return f, nil
}

func convertBoolean(value string) (any, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if truthyValues[s] {
		return true, nil
	}
	if falsyValues[s] {
		return false, nil
	}
	return nil, &TypeConversionError{Raw: value, Type: TypeBoolean, Reason: "not a recognized boolean value"}
}

func convertArray(value string) []string {
	elements := make([]string, 0)
	for _, element := range strings.Split(value, ",") {
		element = strings.TrimSpace(element)
		if element != "" {
			elements = append(elements, element)
		}
	}
	return elements
}

func convertJSON(value string) (any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		return nil, &TypeConversionError{Raw: value, Type: TypeJSON, Reason: err.Error()}
	}
	return parsed, nil
}
