package dotenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("sorted output", func(t *testing.T) {
		opts := NewGenerateOptions(FromMap(map[string]string{"B": "2", "A": "1"}))
		assert.Equal(t, "A=1\nB=2", Generate(opts))
	})

	t.Run("insertion order preserved when sort is disabled", func(t *testing.T) {
		env := NewEnvironment()
		env.Set("ZETA", "1")
		env.Set("ALPHA", "2")

		opts := NewGenerateOptions(env)
		opts.Sort = false
		assert.Equal(t, "ZETA=1\nALPHA=2", Generate(opts))
	})

	t.Run("include restricts keys", func(t *testing.T) {
		opts := NewGenerateOptions(FromMap(map[string]string{"A": "1", "B": "2", "C": "3"}))
		opts.Include = []string{"C", "A", "UNKNOWN"}
		assert.Equal(t, "A=1\nC=3", Generate(opts))
	})

	t.Run("exclude removes keys", func(t *testing.T) {
		opts := NewGenerateOptions(FromMap(map[string]string{"A": "1", "B": "2", "C": "3"}))
		opts.Exclude = []string{"B"}
		assert.Equal(t, "A=1\nC=3", Generate(opts))
	})

	t.Run("include and exclude combine", func(t *testing.T) {
		opts := NewGenerateOptions(FromMap(map[string]string{"A": "1", "B": "2", "C": "3"}))
		opts.Include = []string{"A", "B"}
		opts.Exclude = []string{"B"}
		assert.Equal(t, "A=1", Generate(opts))
	})

	t.Run("no trailing newline", func(t *testing.T) {
		opts := NewGenerateOptions(FromMap(map[string]string{"A": "1"}))
		assert.Equal(t, "A=1", Generate(opts))
	})

	t.Run("empty source", func(t *testing.T) {
		assert.Equal(t, "", Generate(NewGenerateOptions(NewEnvironment())))
		assert.Equal(t, "", Generate(GenerateOptions{}))
	})

	t.Run("empty value emits bare assignment", func(t *testing.T) {
		opts := NewGenerateOptions(FromMap(map[string]string{"EMPTY": ""}))
		assert.Equal(t, "EMPTY=", Generate(opts))
	})
}

func TestGenerateQuoting(t *testing.T) {
	cases := map[string]struct {
		value    string
		expected string
	}{
		"plain value unquoted":   {"plain", "K=plain"},
		"whitespace quoted":      {"hello world", `K="hello world"`},
		"dollar quoted":          {"a$b", `K="a$b"`},
		"braces quoted":          {"{json}", `K="{json}"`},
		"double quote escaped":   {`say "hi"`, `K="say \"hi\""`},
		"single quote quoted":    {"it's", `K="it's"`},
		"backslash escaped":      {`c:\temp`, `K="c:\\temp"`},
		"newline escaped":        {"line1\nline2", `K="line1\nline2"`},
		"tab and return escaped": {"a\tb\rc", `K="a\tb\rc"`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			opts := NewGenerateOptions(FromMap(map[string]string{"K": tc.value}))
			assert.Equal(t, tc.expected, Generate(opts))
		})
	}
}

// Parse(Generate(m)) must reproduce m exactly for values without expansion
// semantics; generated output is literal, so '$'-bearing values are excluded
// by contract.
func TestGenerateParseRoundTrip(t *testing.T) {
	source := map[string]string{
		"PLAIN":     "value",
		"SPACED":    "hello world",
		"QUOTED":    `say "hi" to 'them'`,
		"ESCAPES":   "line1\nline2\ttabbed\rret",
		"BACKSLASH": `c:\temp\new`,
		"BRACES":    "{not json}",
		"EMPTY":     "",
		"EQUALS":    "a=b=c",
		"HASH":      "not#comment",
	}

	text := Generate(NewGenerateOptions(FromMap(source)))
	env, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, source, env.Map())
}
