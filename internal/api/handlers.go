// Package api exposes the dotenv pipeline over HTTP: parse, validate, and
// render endpoints plus health and version, behind an optional shared-token
// auth middleware. The service is stateless; the process environment is
// never consulted during expansion, so a request's output depends only on
// its body.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nauticalab/envfile-engine/internal/dotenv"
	"github.com/nauticalab/envfile-engine/internal/schema"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	// version is the application version
	version string
	// gitCommit is the git commit hash of the build
	gitCommit string
	// buildTime is the time when the application was built
	buildTime string
	// goVersion is the Go version used to build the application
	goVersion string
}

// NewHandler creates a new Handler instance
func NewHandler(version, gitCommit, buildTime, goVersion string) *Handler {
	return &Handler{
		version:   version,
		gitCommit: gitCommit,
		buildTime: buildTime,
		goVersion: goVersion,
	}
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Version handles GET /api/v1/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, VersionResponse{
		Version:   h.version,
		GitCommit: h.gitCommit,
		BuildTime: h.buildTime,
		GoVersion: h.goVersion,
	})
}

// Parse handles POST /api/v1/parse. Expansion failures (circular
// references, over-deep chains) are content problems, reported as 422.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	env, err := dotenv.Parse(req.Content)
	if err != nil {
		respondUnprocessable(w, ValidationErrorResponse{
			Error:      "parse failed",
			Violations: []Violation{violationOf(err)},
		})
		return
	}

	respondSuccess(w, ParseResponse{
		Variables: env.Map(),
		Keys:      env.Keys(),
		Count:     env.Len(),
	})
}

// Validate handles POST /api/v1/validate.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.Schema == nil {
		respondBadRequest(w, "schema is required")
		return
	}

	schemaDoc := toSchema(req.Schema)
	if err := schema.Validate(schemaDoc); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	env, err := dotenv.Parse(req.Content)
	if err != nil {
		respondUnprocessable(w, ValidationErrorResponse{
			Error:      "parse failed",
			Violations: []Violation{violationOf(err)},
		})
		return
	}

	typed, err := dotenv.Validate(env, schemaDoc)
	if err != nil {
		var validation *dotenv.ValidationError
		if errors.As(err, &validation) {
			violations := make([]Violation, 0, len(validation.Violations))
			for _, v := range validation.Violations {
				violations = append(violations, violationOf(v))
			}
			respondUnprocessable(w, ValidationErrorResponse{
				Error:      "validation failed",
				Violations: violations,
			})
			return
		}
		respondBadRequest(w, err.Error())
		return
	}

	respondSuccess(w, ValidateResponse{
		Variables: typed.Map(),
		Keys:      typed.Keys(),
	})
}

// Render handles POST /api/v1/render.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	opts := dotenv.NewGenerateOptions(dotenv.FromMap(req.Source))
	opts.Include = req.Include
	opts.Exclude = req.Exclude
	if req.Sort != nil {
		opts.Sort = *req.Sort
	}

	respondSuccess(w, RenderResponse{Content: dotenv.Generate(opts)})
}

// toSchema converts the wire document to the core schema type.
func toSchema(doc *SchemaDocument) *dotenv.Schema {
	s := &dotenv.Schema{Required: doc.Required}
	if len(doc.Variables) > 0 {
		s.Variables = make(map[string]dotenv.VariableSpec, len(doc.Variables))
		for name, spec := range doc.Variables {
			s.Variables[name] = dotenv.VariableSpec{Type: spec.Type, Default: spec.Default}
		}
	}
	return s
}

// violationOf maps a pipeline error to its wire representation.
func violationOf(err error) Violation {
	switch e := err.(type) {
	case *dotenv.RequiredMissingError:
		return Violation{Kind: "required_missing", Key: e.Key, Message: e.Error()}
	case *dotenv.TypeConversionError:
		return Violation{Kind: "type_conversion", Key: e.Key, Message: e.Error()}
	case *dotenv.UnsupportedTypeError:
		return Violation{Kind: "unsupported_type", Key: e.Key, Message: e.Error()}
	case *dotenv.CircularReferenceError:
		return Violation{Kind: "circular_reference", Message: e.Error()}
	case *dotenv.DepthExceededError:
		return Violation{Kind: "depth_exceeded", Message: e.Error()}
	default:
		return Violation{Kind: "invalid", Message: err.Error()}
	}
}
