package dotenv

import (
	"regexp"
	"strings"
)

// Lookup resolves a variable name from a source outside the document being
// parsed, typically the surrounding process environment. It is consulted
// only for names the document has not defined.
type Lookup interface {
	LookupEnv(name string) (string, bool)
}

// LookupFunc adapts a plain function to the Lookup interface.
type LookupFunc func(name string) (string, bool)

// LookupEnv calls f.
func (f LookupFunc) LookupEnv(name string) (string, bool) {
	return f(name)
}

// MaxExpandDepth bounds how deeply variable expansion may recurse through
// resolved values before failing with a DepthExceededError.
const MaxExpandDepth = 100

// referencePattern matches the two reference forms, scanned left to right
// and non-overlapping: ${NAME} with NAME being any run of non-'}' characters,
// and $NAME with NAME being an identifier. A '$' followed by neither form is
// left untouched.
var referencePattern = regexp.MustCompile(`\$\{[^}]+\}|\$[A-Za-z_][A-Za-z0-9_]*`)

// expandContext tracks the chain of names currently being expanded and the
// recursion depth. It is copied on every recursive call so sibling
// references never observe each other's state.
type expandContext struct {
	visiting []string
	depth    int
}

func newExpandContext() *expandContext {
	return &expandContext{}
}

func (c *expandContext) visited(name string) bool {
	for _, n := range c.visiting {
		if n == name {
			return true
		}
	}
	return false
}

// push returns a new context with name appended to the visiting chain and
// the depth incremented. The receiver is left untouched.
func (c *expandContext) push(name string) *expandContext {
	chain := make([]string, len(c.visiting), len(c.visiting)+1)
	copy(chain, c.visiting)
	return &expandContext{visiting: append(chain, name), depth: c.depth + 1}
}

// expand substitutes ${NAME} and $NAME references in value. Each reference
// resolves against env first, then lookup, then the empty string. A name
// present in env resolves locally even when its value is empty: defined as
// empty is still defined, and is not shadowed by the external lookup.
//
// If a resolved replacement itself contains '$' it is expanded recursively.
// Revisiting a name already on the chain fails with CircularReferenceError;
// recursing past MaxExpandDepth fails with DepthExceededError. Either
// failure aborts the expansion of the entire outer value.
func expand(value string, env *Environment, lookup Lookup, ctx *expandContext) (string, error) {
	if !strings.Contains(value, "$") {
		return value, nil
	}

	var expandErr error
	result := referencePattern.ReplaceAllStringFunc(value, func(ref string) string {
		if expandErr != nil {
			return ref
		}

		name := referenceName(ref)
		resolved, found := env.Lookup(name)
		if !found && lookup != nil {
			resolved, _ = lookup.LookupEnv(name)
		}

		if strings.Contains(resolved, "$") {
			if ctx.visited(name) {
				expandErr = &CircularReferenceError{Chain: ctx.push(name).visiting}
				return ref
			}
			next := ctx.push(name)
			if next.depth > MaxExpandDepth {
				expandErr = &DepthExceededError{Limit: MaxExpandDepth}
				return ref
			}
			nested, err := expand(resolved, env, lookup, next)
			if err != nil {
				expandErr = err
				return ref
			}
			resolved = nested
		}
		return resolved
	})

	if expandErr != nil {
		return "", expandErr
	}
	return result, nil
}

// referenceName strips the reference syntax from a matched token.
func referenceName(ref string) string {
	if strings.HasPrefix(ref, "${") {
		return ref[2 : len(ref)-1]
	}
	return ref[1:]
}
