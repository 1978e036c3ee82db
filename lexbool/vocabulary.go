package lexbool

// Default token lists, applied to any slot that is still unset when the
// first parse happens on a Vocabulary.
var (
	DefaultTruthyTokens = []string{"true", "t", "1", "yes"}
	DefaultFalseyTokens = []string{"false", "f", "0", "no"}
)

// Vocabulary holds the truthy and falsey token sets for one execution
// context. Each slot is settable exactly once: the first successful
// SetTruthy/SetFalsey call, or the first Parse (which applies the defaults
// to any slot still unset), fixes it for the lifetime of the Vocabulary.
//
// The two slots are fixed independently: setting one does not fix the other.
// The sets are expected to be disjoint; that is not enforced, and a token
// present in both reads as true because Parse checks the truthy set first.
//
// A Vocabulary carries no locks. It is meant to be owned by a single
// execution context; see Default for the shared package-level instance.
type Vocabulary struct {
	truthy *TokenSet
	falsey *TokenSet
}

// NewVocabulary returns a Vocabulary with both slots unset.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{}
}

// SetTruthy fixes the truthy token set. It returns true when this call
// performed the fixation, false when the slot was already fixed by an
// earlier call or by an earlier Parse applying the defaults. Rejected calls
// leave the effective set unchanged.
func (v *Vocabulary) SetTruthy(tokens ...string) bool {
	if v.truthy != nil {
		return false
	}
	ts := NewTokenSet(tokens...)
	v.truthy = &ts
	return true
}

// SetFalsey fixes the falsey token set. Same once-only semantics as
// SetTruthy; the two slots are independent.
func (v *Vocabulary) SetFalsey(tokens ...string) bool {
	if v.falsey != nil {
		return false
	}
	ts := NewTokenSet(tokens...)
	v.falsey = &ts
	return true
}

// TruthyFixed reports whether the truthy slot has been fixed.
func (v *Vocabulary) TruthyFixed() bool {
	return v.truthy != nil
}

// FalseyFixed reports whether the falsey slot has been fixed.
func (v *Vocabulary) FalseyFixed() bool {
	return v.falsey != nil
}

// TruthyTokens returns the effective truthy tokens: the fixed set, or the
// defaults that a parse would apply. Reading does not fix the slot.
func (v *Vocabulary) TruthyTokens() []string {
	if v.truthy != nil {
		return v.truthy.Tokens()
	}
	out := make([]string, len(DefaultTruthyTokens))
	copy(out, DefaultTruthyTokens)
	return out
}

// FalseyTokens returns the effective falsey tokens, without fixing the slot.
func (v *Vocabulary) FalseyTokens() []string {
	if v.falsey != nil {
		return v.falsey.Tokens()
	}
	out := make([]string, len(DefaultFalseyTokens))
	copy(out, DefaultFalseyTokens)
	return out
}

// ensureFixed applies the default token lists to any slot still unset. Once
// Parse has run, later SetTruthy/SetFalsey calls report false.
func (v *Vocabulary) ensureFixed() {
	if v.truthy == nil {
		ts := NewTokenSet(DefaultTruthyTokens...)
		v.truthy = &ts
	}
	if v.falsey == nil {
		ts := NewTokenSet(DefaultFalseyTokens...)
		v.falsey = &ts
	}
}

// Parse converts input into a LexicalBool. Any slot still unset is fixed to
// its default token list first. The truthy set is checked before the falsey
// set; input matching neither yields an invalid input error carrying the
// original string.
func (v *Vocabulary) Parse(input string) (LexicalBool, error) {
	v.ensureFixed()

	if v.truthy.Contains(input) {
		return LexicalBool{value: true}, nil
	}
	if v.falsey.Contains(input) {
		return LexicalBool{value: false}, nil
	}

	return LexicalBool{}, invalidInput(input, v.truthy.Tokens(), v.falsey.Tokens())
}
