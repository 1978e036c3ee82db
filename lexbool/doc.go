// Package lexbool parses textual tokens into a boolean-valued wrapper type
// against a once-settable vocabulary of truthy and falsey tokens.
//
// A Vocabulary is an explicit per-execution-context store: each of its two
// token sets can be fixed exactly once, either by SetTruthy/SetFalsey or by
// the first Parse applying the built-in defaults. The package-level
// InitializeTrueValues, InitializeFalseValues, and Parse operate on a shared
// default Vocabulary for drop-in use.
//
// Loading vocabulary definitions from files, environment variables, or
// flags lives in the vocab package.
package lexbool
