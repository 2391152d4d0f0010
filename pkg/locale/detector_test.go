package locale

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestInferCountryFromPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		wantCode string
	}{
		{"US E.164", "+12015550123", "US"},
		{"Bangladesh with separators", "+880 1812-345678", "BD"},
		{"India", "+918123456789", "IN"},
		{"UK mobile", "+447400123456", "GB"},
		{"national number defaults to US", "(201) 555-0123", "US"},
		{"unlisted country", "+5491123456789", ""},
		{"empty", "", ""},
		{"not a phone", "not-a-phone", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferCountryFromPhone(tt.phone)
			if tt.wantCode == "" {
				if got != nil {
					t.Errorf("InferCountryFromPhone(%q) = %v, want nil", tt.phone, got.Code)
				}
				return
			}
			if got == nil || got.Code != tt.wantCode {
				t.Errorf("InferCountryFromPhone(%q) = %v, want %s", tt.phone, got, tt.wantCode)
			}
		})
	}
}

func TestInferTimezoneFromPhone(t *testing.T) {
	if got := InferTimezoneFromPhone("+8801812345678"); got != "Asia/Dhaka" {
		t.Errorf("got %q, want Asia/Dhaka", got)
	}
	if got := InferTimezoneFromPhone(""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestCountries_ZonesLoad(t *testing.T) {
	for code, country := range Countries {
		if country.Code != code {
			t.Errorf("%s: code mismatch %s", code, country.Code)
		}
		if _, err := time.LoadLocation(country.DefaultTimezone); err != nil {
			t.Errorf("%s: %v", code, err)
		}
	}
}
