package dotenv

import (
	"sort"
	"strings"
)

// GenerateOptions configures Generate. Construct with NewGenerateOptions to
// get the documented defaults; every recognized option is an explicit field.
type GenerateOptions struct {
	// Source supplies the keys and values to serialize.
	Source *Environment

	// Include restricts output to these keys when non-nil. Keys not present
	// in Source are ignored.
	Include []string

	// Exclude removes these keys from the output.
	Exclude []string

	// Sort orders output lines lexicographically by key. When false, keys
	// keep Source's insertion order. Defaults to true.
	Sort bool
}

// NewGenerateOptions returns options for source with defaults applied.
func NewGenerateOptions(source *Environment) GenerateOptions {
	return GenerateOptions{Source: source, Sort: true}
}

// Generate serializes the selected keys as KEY=VALUE lines joined with \n,
// without a trailing newline. Values that contain whitespace, a quote
// character, '$', '{', '}', or a backslash are double-quoted with backslash
// escaping so they survive a round trip through Parse.
//
// Output is always literal: expansion semantics are not re-encoded, so a
// value that itself looks like a reference parses back as a reference.
func Generate(opts GenerateOptions) string {
	if opts.Source == nil {
		return ""
	}

	keys := opts.Source.Keys()
	if opts.Include != nil {
		keys = intersect(keys, opts.Include)
	}
	if len(opts.Exclude) > 0 {
		keys = subtract(keys, opts.Exclude)
	}
	if opts.Sort {
		sort.Strings(keys)
	}

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+quoteValue(opts.Source.Get(key)))
	}
	return strings.Join(lines, "\n")
}

func intersect(keys, include []string) []string {
	allowed := make(map[string]bool, len(include))
	for _, key := range include {
		allowed[key] = true
	}
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if allowed[key] {
			result = append(result, key)
		}
	}
	return result
}

func subtract(keys, exclude []string) []string {
	removed := make(map[string]bool, len(exclude))
	for _, key := range exclude {
		removed[key] = true
	}
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if !removed[key] {
			result = append(result, key)
		}
	}
	return result
}

// needsQuoting reports whether value cannot be emitted bare: anything with
// whitespace, quotes, expansion syntax, or backslashes would not parse back
// to the same string.
func needsQuoting(value string) bool {
	return strings.ContainsAny(value, " \t\n\r\"'${}\\")
}

// quoteValue wraps value in double quotes and escapes backslash, double
// quote, and the control characters newline, carriage return, and tab.
func quoteValue(value string) string {
	if !needsQuoting(value) {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(value[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
