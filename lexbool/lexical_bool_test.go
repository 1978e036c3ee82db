package lexbool

import (
	"encoding/json"
	"testing"

	"github.com/spf13/pflag"
)

func TestLexicalBool_Equality(t *testing.T) {
	t.Run("Equal against plain booleans", func(t *testing.T) {
		lb := New(true)
		if !lb.Equal(true) {
			t.Error("wrapped true should equal true")
		}
		if lb.Equal(false) {
			t.Error("wrapped true should not equal false")
		}
	})

	t.Run("values with the same boolean are equal", func(t *testing.T) {
		if New(true) != New(true) {
			t.Error("two wrapped trues should compare equal")
		}
		if New(true) == New(false) {
			t.Error("wrapped true and false should not compare equal")
		}
	})

	t.Run("zero value wraps false", func(t *testing.T) {
		var lb LexicalBool
		if lb.Bool() {
			t.Error("zero value should read false")
		}
	})
}

func TestLexicalBool_String(t *testing.T) {
	if got := New(true).String(); got != "true" {
		t.Errorf("String = %q, want true", got)
	}
	if got := New(false).String(); got != "false" {
		t.Errorf("String = %q, want false", got)
	}
}

func TestLexicalBool_JSON(t *testing.T) {
	resetDefault()

	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(New(true))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != "true" {
			t.Errorf("marshal = %s, want true", data)
		}
	})

	t.Run("unmarshal boolean", func(t *testing.T) {
		var lb LexicalBool
		if err := json.Unmarshal([]byte("false"), &lb); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if lb.Bool() {
			t.Error("should unmarshal to false")
		}
	})

	t.Run("unmarshal string through vocabulary", func(t *testing.T) {
		var lb LexicalBool
		if err := json.Unmarshal([]byte(`"yes"`), &lb); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !lb.Bool() {
			t.Error("should unmarshal yes to true")
		}
	})

	t.Run("unmarshal unrecognized string", func(t *testing.T) {
		var lb LexicalBool
		err := json.Unmarshal([]byte(`"maybe"`), &lb)
		if err == nil {
			t.Fatal("expected error")
		}
		if !IsInvalidInput(err) {
			t.Errorf("expected invalid input error, got %v", err)
		}
	})

	t.Run("struct field round trip", func(t *testing.T) {
		type settings struct {
			Enabled LexicalBool `json:"enabled"`
		}
		var s settings
		if err := json.Unmarshal([]byte(`{"enabled":"1"}`), &s); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !s.Enabled.Bool() {
			t.Error("enabled should be true")
		}
		out, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(out) != `{"enabled":true}` {
			t.Errorf("marshal = %s", out)
		}
	})
}

func TestLexicalBool_Text(t *testing.T) {
	resetDefault()

	var lb LexicalBool
	if err := lb.UnmarshalText([]byte("no")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if lb.Bool() {
		t.Error("no should read false")
	}

	text, err := lb.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "false" {
		t.Errorf("MarshalText = %q, want false", text)
	}

	if err := lb.UnmarshalText([]byte("nah")); err == nil {
		t.Error("unrecognized text should fail")
	}
}

func TestLexicalBool_PflagValue(t *testing.T) {
	resetDefault()

	t.Run("valid flag value", func(t *testing.T) {
		var dryRun LexicalBool
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.Var(&dryRun, "dry-run", "run without side effects")

		if err := fs.Parse([]string{"--dry-run=yes"}); err != nil {
			t.Fatalf("flag parse failed: %v", err)
		}
		if !dryRun.Bool() {
			t.Error("dry-run should be true")
		}
		if dryRun.Type() != "lexbool" {
			t.Errorf("Type = %q, want lexbool", dryRun.Type())
		}
	})

	t.Run("invalid flag value surfaces the parse error", func(t *testing.T) {
		var dryRun LexicalBool
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.SetOutput(discard{})
		fs.Var(&dryRun, "dry-run", "run without side effects")

		if err := fs.Parse([]string{"--dry-run=perhaps"}); err == nil {
			t.Error("unrecognized flag value should fail")
		}
	})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
