package lexbool

// TokenSet is an immutable set of tokens, fixed at construction time.
// Membership tests are exact: no trimming, case folding, or other
// normalization is applied.
type TokenSet struct {
	members map[string]struct{}
	ordered []string
}

// NewTokenSet builds a set from the given tokens. Duplicates are dropped,
// first occurrence wins, and insertion order is preserved for reporting.
func NewTokenSet(tokens ...string) TokenSet {
	ts := TokenSet{
		members: make(map[string]struct{}, len(tokens)),
	}
	for _, tok := range tokens {
		if _, seen := ts.members[tok]; seen {
			continue
		}
		ts.members[tok] = struct{}{}
		ts.ordered = append(ts.ordered, tok)
	}
	return ts
}

// Contains reports whether token is a member of the set.
func (ts TokenSet) Contains(token string) bool {
	_, ok := ts.members[token]
	return ok
}

// Tokens returns the members in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (ts TokenSet) Tokens() []string {
	out := make([]string, len(ts.ordered))
	copy(out, ts.ordered)
	return out
}

// Len returns the number of members.
func (ts TokenSet) Len() int {
	return len(ts.ordered)
}
