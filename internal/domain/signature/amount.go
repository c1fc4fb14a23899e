package signature

import (
	"fmt"
	"strconv"
	"strings"

	"learnhub_checkout/internal/domain/currency"
)

// FormatAmount renders minor units of code with the currency's own number of
// decimals ("500000" LKR -> "5000.00", "7500" JPY -> "7500").
func FormatAmount(minor int64, code string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	exp := currency.Exponent(code)
	if exp == 0 {
		return fmt.Sprintf("%s%d", sign, minor)
	}
	scale := pow10(exp)
	return fmt.Sprintf("%s%d.%0*d", sign, minor/scale, exp, minor%scale)
}

// ParseAmount is the inverse of FormatAmount. It accepts at most as many decimals as
// code has and rejects anything else rather than rounding.
func ParseAmount(s, code string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	exp := currency.Exponent(code)
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > exp {
		return 0, fmt.Errorf("amount %q has more than %d decimals for %s", s, exp, code)
	}
	for len(frac) < exp {
		frac += "0"
	}
	negative := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	var f uint64
	if exp > 0 {
		f, err = strconv.ParseUint(frac, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}
	v := int64(w)*pow10(exp) + int64(f)
	if negative {
		v = -v
	}
	return v, nil
}

func pow10(exp int) int64 {
	v := int64(1)
	for i := 0; i < exp; i++ {
		v *= 10
	}
	return v
}
