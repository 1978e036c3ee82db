package lexbool

import "testing"

func TestDefaultVocabulary_Initialize(t *testing.T) {
	t.Run("initialize before any parse", func(t *testing.T) {
		resetDefault()
		if !InitializeTrueValues("foo", "bar") {
			t.Fatal("first InitializeTrueValues should return true")
		}
		if InitializeTrueValues("true", "1") {
			t.Error("second InitializeTrueValues should return false")
		}
		if !InitializeFalseValues("baz", "qux") {
			t.Fatal("first InitializeFalseValues should return true")
		}

		if lb, err := Parse("foo"); err != nil || !lb.Bool() {
			t.Errorf("Parse(foo) = (%v, %v), want true", lb, err)
		}
		if lb, err := Parse("qux"); err != nil || lb.Bool() {
			t.Errorf("Parse(qux) = (%v, %v), want false", lb, err)
		}
		if _, err := Parse("true"); err == nil {
			t.Error("Parse(true) should fail after customizing both sets")
		}
	})

	t.Run("parse fixes defaults first", func(t *testing.T) {
		resetDefault()
		if lb, err := Parse("yes"); err != nil || !lb.Bool() {
			t.Fatalf("Parse(yes) = (%v, %v), want true", lb, err)
		}
		if InitializeTrueValues("x") {
			t.Error("InitializeTrueValues should return false once a parse fixed the defaults")
		}
		if InitializeFalseValues("y") {
			t.Error("InitializeFalseValues should return false once a parse fixed the defaults")
		}
	})

	t.Run("Default exposes the shared instance", func(t *testing.T) {
		resetDefault()
		Default().SetTruthy("shared")
		if InitializeTrueValues("other") {
			t.Error("fixation through Default should be visible to InitializeTrueValues")
		}
		if lb, err := Parse("shared"); err != nil || !lb.Bool() {
			t.Errorf("Parse(shared) = (%v, %v), want true", lb, err)
		}
	})
}
