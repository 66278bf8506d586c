package webhook

import "testing"

func TestCanonicalUTC(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Already Canonical", "2024-01-15T10:30:00Z", "2024-01-15T10:30:00Z"},
		{"Positive Offset", "2024-02-01T00:00:00+05:30", "2024-01-31T18:30:00Z"},
		{"Negative Offset", "2024-02-01T00:00:00-08:00", "2024-02-01T08:00:00Z"},
		{"No Offset Treated As UTC", "2024-01-15T10:30:00", "2024-01-15T10:30:00Z"},
		{"Fractional Seconds Truncated", "2024-01-15T10:30:00.123456Z", "2024-01-15T10:30:00Z"},
		{"Surrounding Whitespace", "  2024-01-15T10:30:00Z ", "2024-01-15T10:30:00Z"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := canonicalUTC(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}

	t.Run("Idempotent", func(t *testing.T) {
		once, err := canonicalUTC("2024-02-01T00:00:00+05:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		twice, err := canonicalUTC(once)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if once != twice {
			t.Errorf("canonicalization not idempotent: %q vs %q", once, twice)
		}
	})

	t.Run("Unparseable", func(t *testing.T) {
		if _, err := canonicalUTC("not a timestamp"); err == nil {
			t.Errorf("expected error for unparseable input")
		}
		if _, err := canonicalUTC(""); err == nil {
			t.Errorf("expected error for empty input")
		}
	})
}
