// Package dotenv implements the configuration-value pipeline at the heart of
// envfile-engine: parsing .env-style text into an ordered string mapping,
// expanding variable references, validating and coercing values against a
// declarative schema, and serializing a mapping back to text.
//
// Every entry point is a pure function over its inputs. The package performs
// no I/O and holds no state between calls; file and process-environment
// access live in the envfile package.
//
// # Parsing
//
// [Parse] turns raw text into an insertion-ordered [Environment]:
//
//	env, err := dotenv.Parse("HOST=db.internal\nURL=postgres://${HOST}/app\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(env.Get("URL")) // postgres://db.internal/app
//
// Malformed lines (no '=', empty key) are dropped silently; the parser is
// deliberately permissive about content. Expansion failures are not: a
// circular reference or an over-deep chain aborts the whole parse.
//
// [ParseWithLookup] additionally consults a caller-supplied [Lookup] for
// names the document has not (yet) defined, which is how the surrounding
// process environment participates in expansion without the package ever
// reading it directly.
//
// # Validation
//
// [Validate] applies a [Schema] to a parsed environment, converting declared
// variables to their declared types, applying defaults, and passing every
// undeclared key through unchanged. All violations found during one call are
// collected into a single [ValidationError]:
//
//	typed, err := dotenv.Validate(env, schema)
//	var verr *dotenv.ValidationError
//	if errors.As(err, &verr) {
//	    for _, v := range verr.Violations {
//	        fmt.Println(v)
//	    }
//	}
//
// # Serialization
//
// [Generate] is the best-effort inverse of [Parse] for values that do not
// carry expansion semantics: it emits KEY=VALUE lines, quoting and escaping
// values that would otherwise not survive a round trip.
package dotenv
