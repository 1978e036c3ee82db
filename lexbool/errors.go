package lexbool

import (
	goerrors "errors"

	"github.com/goliatone/go-errors"
)

// TextCodeInvalidInput identifies the single failure kind this package
// produces: input that matches neither token set.
const TextCodeInvalidInput = "INVALID_BOOL_INPUT"

// invalidInput builds the parse failure for input matching neither set. The
// original input and the active token lists travel in the error metadata.
func invalidInput(input string, truthy, falsey []string) error {
	return errors.New("unrecognized boolean token", errors.CategoryBadInput).
		WithTextCode(TextCodeInvalidInput).
		WithMetadata(map[string]any{
			"input":         input,
			"truthy_tokens": truthy,
			"falsey_tokens": falsey,
		})
}

// IsInvalidInput reports whether err is a parse failure from this package.
func IsInvalidInput(err error) bool {
	var rich *errors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == TextCodeInvalidInput
}

// InvalidInputToken recovers the original input carried by a parse failure.
// The second return is false when err is not a parse failure from this
// package.
func InvalidInputToken(err error) (string, bool) {
	var rich *errors.Error
	if !goerrors.As(err, &rich) {
		return "", false
	}
	if rich.TextCode != TextCodeInvalidInput {
		return "", false
	}
	input, ok := rich.Metadata["input"].(string)
	return input, ok
}
