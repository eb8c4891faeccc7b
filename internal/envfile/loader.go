// Package envfile wraps the dotenv pipeline with its external
// collaborators: reading and writing env files through an injected
// filesystem and populating a process-wide environment store. All file
// access goes through afero.Fs and all process-environment access through
// the EnvStore interface, so every operation is testable without touching
// the real environment.
package envfile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/nauticalab/envfile-engine/internal/dotenv"
)

// DefaultPath is the env file read when LoadOptions.Path is empty.
const DefaultPath = ".env"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NotFoundError reports a missing env file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("env file not found: %s", e.Path)
}

// LoadOptions configures Load. Every recognized option is an explicit
// field; zero values mean the documented defaults.
type LoadOptions struct {
	// Path is the env file to read. Defaults to ".env".
	Path string

	// Override controls Populate: when true, loaded values replace existing
	// store entries. Defaults to false (existing entries win).
	Override bool

	// Encoding names the file encoding. Only UTF-8 is supported; a leading
	// byte-order mark is stripped. Defaults to "utf-8".
	Encoding string

	// Schema, when non-nil, validates the parsed environment.
	Schema *dotenv.Schema

	// Fs is the filesystem to read from. Defaults to the OS filesystem.
	Fs afero.Fs

	// Store supplies the expansion fallback and the Populate target.
	// Defaults to the real process environment.
	Store EnvStore
}

func (o *LoadOptions) applyDefaults() {
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if o.Encoding == "" {
		o.Encoding = "utf-8"
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Store == nil {
		o.Store = OSEnv{}
	}
}

func (o *LoadOptions) validate() error {
	switch strings.ToLower(o.Encoding) {
	case "utf-8", "utf8":
		return nil
	default:
		return dotenv.NewInputError("unsupported encoding %q (only utf-8 is supported)", o.Encoding)
	}
}

// Result holds the outcome of a Load call.
type Result struct {
	// Environment is the parsed, expanded string mapping.
	Environment *dotenv.Environment

	// Typed is the validated mapping; nil when no schema was given.
	Typed *dotenv.TypedEnvironment
}

// Load reads and parses an env file, expanding references against the store,
// and validates the result when a schema is configured. It never writes to
// the store; combine with Populate (or use Apply) for that.
func Load(opts LoadOptions) (*Result, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(opts.Fs, opts.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: opts.Path}
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", opts.Path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	env, err := dotenv.ParseWithLookup(string(data), storeLookup(opts.Store))
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", opts.Path, err)
	}

	result := &Result{Environment: env}
	if opts.Schema != nil {
		typed, err := dotenv.Validate(env, opts.Schema)
		if err != nil {
			return nil, fmt.Errorf("invalid environment in %s: %w", opts.Path, err)
		}
		result.Typed = typed
	}
	return result, nil
}

// Apply loads an env file and populates the store with the result,
// honoring opts.Override.
func Apply(opts LoadOptions) (*Result, error) {
	opts.applyDefaults()
	result, err := Load(opts)
	if err != nil {
		return nil, err
	}
	if err := Populate(result.Environment, opts.Store, opts.Override); err != nil {
		return nil, err
	}
	return result, nil
}

// Overload is Apply with Override forced on: loaded values replace any
// existing store entries.
func Overload(opts LoadOptions) (*Result, error) {
	opts.Override = true
	return Apply(opts)
}

// Populate writes env into store in insertion order. Without override,
// names already present in the store keep their current values.
func Populate(env *dotenv.Environment, store EnvStore, override bool) error {
	if store == nil {
		return dotenv.NewInputError("store must not be nil")
	}
	for _, key := range env.Keys() {
		if !override && store.Has(key) {
			continue
		}
		if err := store.Set(key, env.Get(key)); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}

// Write serializes env (sorted, quoted as needed) and writes it to path.
func Write(fsys afero.Fs, path string, env *dotenv.Environment) error {
	content := dotenv.Generate(dotenv.NewGenerateOptions(env))
	if content != "" {
		content += "\n"
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write env file %s: %w", path, err)
	}
	return nil
}

// storeLookup adapts an EnvStore to the read-only dotenv.Lookup the
// expander consumes. Stores that already implement Lookup (OSEnv, MapEnv)
// are used directly.
func storeLookup(store EnvStore) dotenv.Lookup {
	if store == nil {
		return nil
	}
	if lookup, ok := store.(dotenv.Lookup); ok {
		return lookup
	}
	return dotenv.LookupFunc(func(name string) (string, bool) {
		if store.Has(name) {
			return store.Get(name), true
		}
		return "", false
	})
}
