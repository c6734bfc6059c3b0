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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-06-10", "2024-02-29", "2000-01-01"}
	invalid := []string{"2025-13-01", "2025-02-30", "06/10/2025", "2025-6-1", ""}
	for _, date := range valid {
		if !IsValidDate(date) {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if IsValidDate(date) {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		if !IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = false, want true", month)
		}
	}
	for _, month := range []int{0, 13, -1} {
		if IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = true, want false", month)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
		{Field: "store_id", Message: "store_id must be a known store"},
	}

	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Errorf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["date"] != "date must be in YYYY-MM-DD format" {
		t.Errorf("ToMap()[\"date\"] = %q", m["date"])
	}
}
