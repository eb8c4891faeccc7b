package envfile

import "os"

// EnvStore is a process-wide key/value store. The pipeline core never
// touches one directly; Load consults it read-only as the expansion
// fallback, and Populate is the single write path into it.
type EnvStore interface {
	// Get returns the value for name, or the empty string when absent.
	Get(name string) string

	// Set assigns value to name.
	Set(name, value string) error

	// Has reports whether name is present, distinguishing an absent name
	// from one set to the empty string.
	Has(name string) bool
}

// OSEnv is an EnvStore backed by the real process environment. It also
// implements dotenv.Lookup, so it can serve as the expansion fallback.
type OSEnv struct{}

// Get returns the value of the named environment variable.
func (OSEnv) Get(name string) string {
	value, _ := os.LookupEnv(name)
	return value
}

// Set sets the named environment variable.
func (OSEnv) Set(name, value string) error {
	return os.Setenv(name, value)
}

// Has reports whether the named environment variable is set.
func (OSEnv) Has(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// LookupEnv implements dotenv.Lookup.
func (OSEnv) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnv is an in-memory EnvStore, used in tests and anywhere a process
// environment must not leak into the pipeline (the HTTP service).
type MapEnv map[string]string

// Get returns the value for name, or the empty string when absent.
func (m MapEnv) Get(name string) string {
	return m[name]
}

// Set assigns value to name.
func (m MapEnv) Set(name, value string) error {
	m[name] = value
	return nil
}

// Has reports whether name is present.
func (m MapEnv) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// LookupEnv implements dotenv.Lookup.
func (m MapEnv) LookupEnv(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}
