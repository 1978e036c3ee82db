package lexbool

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/spf13/pflag"
)

// LexicalBool wraps the boolean produced by a vocabulary lookup. It has no
// identity beyond that boolean: two values wrapping the same boolean compare
// equal, both via == and via Equal.
//
// The zero value wraps false. String-based constructors go through a
// Vocabulary (or the package-level Parse); the text and JSON codecs below
// make LexicalBool usable anywhere a "parse from string" convention applies,
// including as a pflag flag value.
type LexicalBool struct {
	value bool
}

// LexicalBool binds directly into pflag flagsets.
var _ pflag.Value = (*LexicalBool)(nil)

// New wraps a plain boolean.
func New(v bool) LexicalBool {
	return LexicalBool{value: v}
}

// Bool returns the wrapped boolean without mutation.
func (lb LexicalBool) Bool() bool {
	return lb.value
}

// Equal compares against a plain boolean.
func (lb LexicalBool) Equal(other bool) bool {
	return lb.value == other
}

// String renders the wrapped boolean as "true" or "false".
func (lb LexicalBool) String() string {
	return strconv.FormatBool(lb.value)
}

// MarshalJSON renders the wrapped boolean as a bare JSON boolean.
func (lb LexicalBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(lb.value)
}

// UnmarshalJSON accepts a JSON boolean, or a JSON string parsed through the
// package-level vocabulary.
func (lb *LexicalBool) UnmarshalJSON(data []byte) error {
	if lb == nil {
		return errors.New("lexical bool: nil receiver", errors.CategoryBadInput).
			WithTextCode("NIL_RECEIVER")
	}

	trimmed := strings.TrimSpace(string(data))

	var direct bool
	if err := json.Unmarshal([]byte(trimmed), &direct); err == nil {
		lb.value = direct
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return errors.New("lexical bool: unsupported json payload", errors.CategoryBadInput).
			WithTextCode("INVALID_JSON_PAYLOAD").
			WithMetadata(map[string]any{
				"payload": string(data),
			})
	}
	return lb.UnmarshalText([]byte(asString))
}

// MarshalText satisfies encoding.TextMarshaler.
func (lb LexicalBool) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatBool(lb.value)), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler by parsing text through
// the package-level vocabulary. Matching is exact, per Vocabulary.Parse.
func (lb *LexicalBool) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*lb = parsed
	return nil
}

// Set satisfies pflag.Value so a LexicalBool can back a command-line flag.
func (lb *LexicalBool) Set(s string) error {
	return lb.UnmarshalText([]byte(s))
}

// Type satisfies pflag.Value.
func (lb LexicalBool) Type() string {
	return "lexbool"
}
