package sanitizer

import "testing"

func TestStripPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+1 (212) 555-1234", "+12125551234"},
		{" 212\t555 1234 ", "2125551234"},
		{"+880-17-1234-5678", "+8801712345678"},
		{"555.1234", "555.1234"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StripPhone(tt.input); got != tt.want {
				t.Errorf("StripPhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+12125551234",
			want:  "+12125551234",
		},
		{
			name:  "with parentheses and dashes",
			input: "+1 (212) 555-1234",
			want:  "+12125551234",
		},
		{
			name:  "national number assumes US",
			input: "(212) 555-1234",
			want:  "+12125551234",
		},
		{
			name:  "foreign number with country code",
			input: "+44 20 7946 0958",
			want:  "+442079460958",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +12125551234  ",
			want:  "+12125551234",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "too short to be a number is kept stripped",
			input: "12-3",
			want:  "123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	for _, input := range []string{"+1 (212) 555-1234", "12-3", "(212) 555-1234"} {
		once := NormalizePhone(input)
		if twice := NormalizePhone(once); twice != once {
			t.Errorf("NormalizePhone not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
