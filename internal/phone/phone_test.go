package phone

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"5215512345678", "525512345678"},
		{"525512345678", "525512345678"},
		{"+52 1 55 1234 5678", "525512345678"},
		{"+52 (55) 1234-5678", "525512345678"},
		{"52-55-1234-5678", "525512345678"},
		{"5219876543210", "529876543210"},
		// out of pattern: cleaned digits are still returned
		{"15551234567", "15551234567"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeCollapsesMobilePrefixOnlyOnce(t *testing.T) {
	// "5215..." loses the extra 1; the result starting with "521" again must
	// not be rewritten a second time.
	got := Normalize("52121345678901")
	if got != "5221345678901" {
		t.Errorf("Normalize = %q, want %q", got, "5221345678901")
	}
}
