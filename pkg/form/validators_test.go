package form

import "testing"

func TestRequired(t *testing.T) {
	validate := Required("required")
	if validate("") == "" || validate("   ") == "" {
		t.Error("empty and blank values should fail")
	}
	if validate("x") != "" {
		t.Error("non-empty value should pass")
	}
}

func TestMinLength(t *testing.T) {
	validate := MinLength(3, "too short")
	if validate("ab") == "" {
		t.Error("short value should fail")
	}
	if validate("abc") != "" {
		t.Error("value at the limit should pass")
	}
	// Rune count, not byte count.
	if validate("héé") != "" {
		t.Error("three runes should pass regardless of byte length")
	}
}

func TestNumeric(t *testing.T) {
	validate := Numeric("not a number")
	if validate("12a") == "" {
		t.Error("non-numeric value should fail")
	}
	if validate("-42") != "" {
		t.Error("negative integer should pass")
	}
}

func TestComposeReturnsFirstFailure(t *testing.T) {
	validate := Compose(
		Required("required"),
		nil,
		Numeric("not a number"),
	)
	if got := validate(""); got != "required" {
		t.Errorf("got %q, want the first failure", got)
	}
	if got := validate("abc"); got != "not a number" {
		t.Errorf("got %q, want the second failure", got)
	}
	if validate("7") != "" {
		t.Error("valid value should pass the whole chain")
	}
}
