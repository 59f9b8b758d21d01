package namekey

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "John Smith", "JOHN SMITH"},
		{"collapses whitespace", "  jane \t doe  ", "JANE DOE"},
		{"trailing punctuation", "Robert Jones Jr.", "ROBERT JONES JR"},
		{"trailing comma", "Smith, John,", "SMITH, JOHN"},
		{"nan is empty", "nan", ""},
		{"NaN is empty", "NaN", ""},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeMatchesAcrossCaseAndSpacing(t *testing.T) {
	if Normalize("JOHN SMITH") != Normalize("john  smith ") {
		t.Fatal("expected case- and spacing-insensitive keys to match")
	}
}

func TestStripParenthetical(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bob Lee (for wife's banner)", "Bob Lee"},
		{"Alice Green", "Alice Green"},
		{"(anonymous)", ""},
		{"Carlos Ruiz (2nd banner) (again)", "Carlos Ruiz"},
	}
	for _, tc := range cases {
		if got := StripParenthetical(tc.in); got != tc.want {
			t.Fatalf("StripParenthetical(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
