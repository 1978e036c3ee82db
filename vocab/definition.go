package vocab

import (
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-lexbool/lexbool"
)

// Definition is the serialized form of a vocabulary: the token lists a
// file, environment, flag, or struct source supplies before they are fixed
// onto a lexbool.Vocabulary. An empty list means "leave that slot alone" so
// the built-in defaults can apply.
type Definition struct {
	Truthy []string `koanf:"truthy" json:"truthy"`
	Falsey []string `koanf:"falsey" json:"falsey"`
}

// Validate rejects authoring mistakes in external sources: blank tokens and
// tokens listed as both truthy and falsey. The core store never enforces
// disjointness, so overlap in a loaded document is caught here instead.
func (d *Definition) Validate() error {
	if err := validateTokens("truthy", d.Truthy); err != nil {
		return err
	}
	if err := validateTokens("falsey", d.Falsey); err != nil {
		return err
	}

	truthy := make(map[string]struct{}, len(d.Truthy))
	for _, tok := range d.Truthy {
		truthy[tok] = struct{}{}
	}
	for _, tok := range d.Falsey {
		if _, ok := truthy[tok]; ok {
			return errors.New("token listed as both truthy and falsey", errors.CategoryValidation).
				WithTextCode("AMBIGUOUS_TOKEN").
				WithMetadata(map[string]any{
					"token": tok,
				})
		}
	}

	return nil
}

// Apply fixes the non-empty lists onto v, returning the per-slot fixation
// results. A slot that was already fixed, or whose list is empty, reports
// false. First write wins, matching lexbool.Vocabulary semantics.
func (d *Definition) Apply(v *lexbool.Vocabulary) (truthyFixed, falseyFixed bool) {
	if v == nil {
		return false, false
	}
	if len(d.Truthy) > 0 {
		truthyFixed = v.SetTruthy(d.Truthy...)
	}
	if len(d.Falsey) > 0 {
		falseyFixed = v.SetFalsey(d.Falsey...)
	}
	return truthyFixed, falseyFixed
}

func validateTokens(list string, tokens []string) error {
	for i, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			return errors.New("blank vocabulary token", errors.CategoryValidation).
				WithTextCode("BLANK_TOKEN").
				WithMetadata(map[string]any{
					"list":  list,
					"index": i,
				})
		}
	}
	return nil
}
