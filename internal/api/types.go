package api

import "time"

// ParseRequest is the body of POST /api/v1/parse.
type ParseRequest struct {
	Content string `json:"content"`
}

// ParseResponse carries the parsed mapping. Keys preserves insertion order,
// which the Variables map cannot.
type ParseResponse struct {
	Variables map[string]string `json:"variables"`
	Keys      []string          `json:"keys"`
	Count     int               `json:"count"`
}

// SchemaDocument is the wire shape of a validation schema.
type SchemaDocument struct {
	Required  []string                        `json:"required,omitempty"`
	Variables map[string]VariableSpecDocument `json:"variables,omitempty"`
}

// VariableSpecDocument declares one variable's type and optional default.
type VariableSpecDocument struct {
	Type    string `json:"type"`
	Default any    `json:"default,omitempty"`
}

// ValidateRequest is the body of POST /api/v1/validate.
type ValidateRequest struct {
	Content string          `json:"content"`
	Schema  *SchemaDocument `json:"schema"`
}

// ValidateResponse carries the typed mapping after successful validation.
type ValidateResponse struct {
	Variables map[string]any `json:"variables"`
	Keys      []string       `json:"keys"`
}

// Violation is one validation failure in a ValidationErrorResponse.
type Violation struct {
	Kind    string `json:"kind"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 422 body listing every violation found.
type ValidationErrorResponse struct {
	Error      string      `json:"error"`
	Violations []Violation `json:"violations"`
}

// RenderRequest is the body of POST /api/v1/render.
type RenderRequest struct {
	Source  map[string]string `json:"source"`
	Include []string          `json:"include,omitempty"`
	Exclude []string          `json:"exclude,omitempty"`
	Sort    *bool             `json:"sort,omitempty"` // absent means true
}

// RenderResponse carries the serialized env text.
type RenderResponse struct {
	Content string `json:"content"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// VersionResponse represents the version information
type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
