package validator

import (
	"math"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2025-02-28"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidLevel(t *testing.T) {
	valid := []string{"3", "4.5", "7", "local", "ท้องถิ่น"}
	invalid := []string{"", "4 5", "level/7", "123456789012345678901"}
	for _, s := range valid {
		if !IsValidLevel(s) {
			t.Errorf("IsValidLevel(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidLevel(s) {
			t.Errorf("IsValidLevel(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"EMP001", "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", "๑๒๓"}
	invalid := []string{"", "EMP 001", "a/b"}
	for _, s := range valid {
		if !IsValidEmployeeID(s) {
			t.Errorf("IsValidEmployeeID(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidEmployeeID(s) {
			t.Errorf("IsValidEmployeeID(%q) = true, want false", s)
		}
	}
}

func TestIsValidBuddhistYear(t *testing.T) {
	if !IsValidBuddhistYear(2568) {
		t.Error("IsValidBuddhistYear(2568) = false, want true")
	}
	if IsValidBuddhistYear(2025) {
		t.Error("IsValidBuddhistYear(2025) = true, want false")
	}
}

func TestIsNonNegative(t *testing.T) {
	if !IsNonNegative(0, 1, 2.5) {
		t.Error("IsNonNegative(0, 1, 2.5) = false, want true")
	}
	if IsNonNegative(1, -0.01) {
		t.Error("IsNonNegative(1, -0.01) = true, want false")
	}
	if !IsNonNegative() {
		t.Error("IsNonNegative() = false, want true")
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsNonNegative(v) {
			t.Errorf("IsNonNegative(%v) = true, want false", v)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "level", Message: "level is invalid"},
	}
	if got := errs.Error(); got != "name: name is required; level: level is invalid" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if m["level"] != "level is invalid" || len(m) != 2 {
		t.Errorf("ToMap() = %v", m)
	}
}
