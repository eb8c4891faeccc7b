package dotenv

import "strings"

// Parse parses .env-style content into an insertion-ordered Environment.
// Variable references in values are expanded against the keys parsed so far.
//
// The parser is permissive about content: blank lines, comments, lines
// without '=', and lines with an empty key are skipped without error. Only
// expansion failures (circular references, over-deep chains) abort the
// parse.
func Parse(content string) (*Environment, error) {
	return ParseWithLookup(content, nil)
}

// ParseWithLookup parses content like Parse and consults lookup for
// referenced names that are not defined by the document itself (or not
// defined yet; forward references never resolve from the document). A nil
// lookup resolves unknown names to the empty string.
func ParseWithLookup(content string, lookup Lookup) (*Environment, error) {
	env := NewEnvironment()
	lines := splitLines(content)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Join continuation lines. A single trailing backslash on the last
		// line has nothing to join and stays literal.
		for hasContinuation(line) && i+1 < len(lines) {
			i++
			line = strings.TrimSuffix(line, `\`) + strings.TrimSpace(lines[i])
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			continue // malformed line, dropped
		}

		key := strings.TrimSpace(line[:eq])
		if key == "" {
			continue
		}
		value := unquote(strings.TrimSpace(line[eq+1:]))

		expanded, err := expand(value, env, lookup, newExpandContext())
		if err != nil {
			return nil, err
		}
		env.Set(key, expanded)
	}

	return env, nil
}

// splitLines splits content on line boundaries, accepting both LF and CRLF.
func splitLines(content string) []string {
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

// hasContinuation reports whether line ends in a single trailing backslash.
// A doubled backslash is an escaped backslash, not a continuation.
func hasContinuation(line string) bool {
	return strings.HasSuffix(line, `\`) && !strings.HasSuffix(line, `\\`)
}

// unquote strips a matching pair of surrounding quotes and processes escape
// sequences inside them. A value that is not fully quoted (including
// partially quoted values such as a"b"c) is returned verbatim.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	quote := value[0]
	if quote != '"' && quote != '\'' {
		return value
	}
	if value[len(value)-1] != quote {
		return value
	}
	return unescape(value[1 : len(value)-1])
}

// unescape rewrites the sequences \n \r \t \\ \" \' to the characters they
// name. Unrecognized sequences keep their backslash.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		default:
			b.WriteByte('\\')
			continue
		}
		i++
	}
	return b.String()
}
