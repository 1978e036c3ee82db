package vocab

import (
	"testing"

	"github.com/goliatone/go-lexbool/lexbool"
)

func TestDefinitionValidate(t *testing.T) {
	t.Run("valid definition", func(t *testing.T) {
		d := &Definition{
			Truthy: []string{"yes", "on"},
			Falsey: []string{"no", "off"},
		}
		if err := d.Validate(); err != nil {
			t.Errorf("Validate returned error: %v", err)
		}
	})

	t.Run("empty lists are valid", func(t *testing.T) {
		d := &Definition{}
		if err := d.Validate(); err != nil {
			t.Errorf("Validate returned error: %v", err)
		}
	})

	t.Run("blank truthy token", func(t *testing.T) {
		d := &Definition{Truthy: []string{"yes", "  "}}
		if err := d.Validate(); err == nil {
			t.Error("expected error for blank token")
		}
	})

	t.Run("blank falsey token", func(t *testing.T) {
		d := &Definition{Falsey: []string{""}}
		if err := d.Validate(); err == nil {
			t.Error("expected error for blank token")
		}
	})

	t.Run("token in both lists", func(t *testing.T) {
		d := &Definition{
			Truthy: []string{"yes", "maybe"},
			Falsey: []string{"no", "maybe"},
		}
		if err := d.Validate(); err == nil {
			t.Error("expected error for ambiguous token")
		}
	})
}

func TestDefinitionApply(t *testing.T) {
	t.Run("fixes both slots", func(t *testing.T) {
		d := &Definition{
			Truthy: []string{"foo"},
			Falsey: []string{"baz"},
		}
		v := lexbool.NewVocabulary()

		truthyFixed, falseyFixed := d.Apply(v)
		if !truthyFixed || !falseyFixed {
			t.Errorf("Apply = (%v, %v), want (true, true)", truthyFixed, falseyFixed)
		}

		if lb, err := v.Parse("foo"); err != nil || !lb.Bool() {
			t.Errorf("Parse(foo) = (%v, %v), want true", lb, err)
		}
		if lb, err := v.Parse("baz"); err != nil || lb.Bool() {
			t.Errorf("Parse(baz) = (%v, %v), want false", lb, err)
		}
	})

	t.Run("second apply is rejected", func(t *testing.T) {
		d := &Definition{Truthy: []string{"foo"}, Falsey: []string{"baz"}}
		v := lexbool.NewVocabulary()

		d.Apply(v)
		truthyFixed, falseyFixed := d.Apply(v)
		if truthyFixed || falseyFixed {
			t.Errorf("second Apply = (%v, %v), want (false, false)", truthyFixed, falseyFixed)
		}
	})

	t.Run("empty lists leave slots for the defaults", func(t *testing.T) {
		d := &Definition{Truthy: []string{"foo"}}
		v := lexbool.NewVocabulary()

		truthyFixed, falseyFixed := d.Apply(v)
		if !truthyFixed {
			t.Error("truthy slot should be fixed")
		}
		if falseyFixed {
			t.Error("empty falsey list should not fix the slot")
		}

		// default falsey tokens still parse
		if lb, err := v.Parse("no"); err != nil || lb.Bool() {
			t.Errorf("Parse(no) = (%v, %v), want false", lb, err)
		}
	})

	t.Run("nil vocabulary", func(t *testing.T) {
		d := &Definition{Truthy: []string{"foo"}}
		truthyFixed, falseyFixed := d.Apply(nil)
		if truthyFixed || falseyFixed {
			t.Error("Apply(nil) should report (false, false)")
		}
	})
}
