package lexbool

import "sync"

// Go has no goroutine-scoped storage, so the package-level vocabulary is a
// single process-wide instance guarded by a mutex. Callers that need
// isolated vocabularies should own their own *Vocabulary.
var (
	defaultMu    sync.Mutex
	defaultVocab = NewVocabulary()
)

// Default returns the package-level Vocabulary used by Parse,
// InitializeTrueValues, and InitializeFalseValues. The returned instance is
// shared; concurrent use outside the package-level functions must be
// coordinated by the caller.
func Default() *Vocabulary {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultVocab
}

// InitializeTrueValues fixes the truthy token set of the package-level
// vocabulary. It returns true when this call performed the fixation, false
// when the set was already fixed, either explicitly or by an earlier Parse
// applying the defaults.
func InitializeTrueValues(tokens ...string) bool {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultVocab.SetTruthy(tokens...)
}

// InitializeFalseValues fixes the falsey token set of the package-level
// vocabulary. Same once-only semantics as InitializeTrueValues; the two
// sets are fixed independently.
func InitializeFalseValues(tokens ...string) bool {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultVocab.SetFalsey(tokens...)
}

// Parse converts input using the package-level vocabulary, fixing any unset
// token set to its defaults first.
func Parse(input string) (LexicalBool, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultVocab.Parse(input)
}

// resetDefault swaps in a fresh package-level vocabulary. Test hook only.
func resetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultVocab = NewVocabulary()
}
