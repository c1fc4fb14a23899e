package signature

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		minor int64
		code  string
		want  string
	}{
		{500000, "LKR", "5000.00"},
		{1, "USD", "0.01"},
		{1050, "LKR", "10.50"},
		{0, "LKR", "0.00"},
		{-250, "USD", "-2.50"},
		{7500, "JPY", "7500"},
		{7500, "jpy", "7500"},
		{12345, "KWD", "12.345"},
		{5, "BHD", "0.005"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.minor, tc.code); got != tc.want {
			t.Fatalf("FormatAmount(%d, %s) = %q, want %q", tc.minor, tc.code, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		code string
		want int64
	}{
		{"5000.00", "LKR", 500000},
		{"5000", "LKR", 500000},
		{"10.5", "LKR", 1050},
		{".75", "USD", 75},
		{" 1.01 ", "USD", 101},
		{"7500", "JPY", 7500},
		{"12.345", "KWD", 12345},
		{"0.5", "BHD", 500},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in, tc.code)
		if err != nil || got != tc.want {
			t.Fatalf("ParseAmount(%q, %s) = %d, %v; want %d", tc.in, tc.code, got, err, tc.want)
		}
	}

	bad := []struct{ in, code string }{
		{"", "LKR"},
		{"abc", "LKR"},
		{"1.001", "LKR"},
		{"1.x", "LKR"},
		{"1,00", "LKR"},
		{"75.00", "JPY"},
		{"1.2345", "KWD"},
	}
	for _, tc := range bad {
		if _, err := ParseAmount(tc.in, tc.code); err == nil {
			t.Fatalf("ParseAmount(%q, %s): expected error", tc.in, tc.code)
		}
	}
}

func TestFormatParseAmount_RoundTripPerCurrency(t *testing.T) {
	for _, code := range []string{"LKR", "USD", "JPY", "KRW", "KWD"} {
		for _, minor := range []int64{0, 1, 99, 7500, 1500000} {
			got, err := ParseAmount(FormatAmount(minor, code), code)
			if err != nil || got != minor {
				t.Fatalf("%s round trip of %d = %d, %v", code, minor, got, err)
			}
		}
	}
}
