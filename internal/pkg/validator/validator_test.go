package validator

import (
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

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "000", "9876543210"}
	invalid := []string{"12a3", "abc", "", " 123", "-1"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsInteger_IsFloat_IsBool(t *testing.T) {
	if !IsInteger("-5") || !IsInteger(" 60 ") || IsInteger("1.5") || IsInteger("") {
		t.Errorf("IsInteger mismatch")
	}
	if !IsFloat("0.85") || !IsFloat("2") || IsFloat("abc") {
		t.Errorf("IsFloat mismatch")
	}
	if !IsBool("true") || !IsBool("FALSE") || !IsBool("1") || IsBool("yes") {
		t.Errorf("IsBool mismatch")
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "1999-12-31"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "", "2023/01/01"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"09:00", "09:00:00", "9:30", "23:59:59", "00:00"}
	invalid := []string{"24:00", "09:60", "09:00:60", "0900", "", "09:00:00:00", "noon"}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockValue(t *testing.T) {
	got, ok := IsValidClockValue("2024-03-01T08:59:59+07:00")
	if !ok || got.Hour() != 8 || got.Minute() != 59 || got.Second() != 59 {
		t.Errorf("IsValidClockValue(RFC3339) = %v, %v", got, ok)
	}

	got, ok = IsValidClockValue("17:00")
	if !ok || got.Hour() != 17 || got.Minute() != 0 {
		t.Errorf("IsValidClockValue(HH:MM) = %v, %v", got, ok)
	}

	got, ok = IsValidClockValue(" 16:59:59 ")
	if !ok || got.Second() != 59 {
		t.Errorf("IsValidClockValue(HH:MM:SS) = %v, %v", got, ok)
	}

	if _, ok := IsValidClockValue("tomorrow"); ok {
		t.Errorf("IsValidClockValue(tomorrow) = true, want false")
	}
}

func TestIsValidConfigKey(t *testing.T) {
	valid := []string{"late_threshold", "work_start_time", "a1"}
	invalid := []string{"", "A", "Late", "late-threshold", "_late", "late threshold"}
	for _, k := range valid {
		if !IsValidConfigKey(k) {
			t.Errorf("IsValidConfigKey(%q) = false, want true", k)
		}
	}
	for _, k := range invalid {
		if IsValidConfigKey(k) {
			t.Errorf("IsValidConfigKey(%q) = true, want false", k)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "value", Message: "is required"},
		{Field: "key", Message: "is invalid"},
	}
	want := "value: is required; key: is invalid"
	if errs.Error() != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", errs.Error(), want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "value", Message: "is required"},
		{Field: "key", Message: "is invalid"},
	}
	m := errs.ToMap()
	if m["value"] != "is required" || m["key"] != "is invalid" {
		t.Errorf("ValidationErrors.ToMap() = %v", m)
	}
}
