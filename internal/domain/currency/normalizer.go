// Package currency converts listed prices into gateway settlement currencies.
package currency

import (
	"math"
	"strings"
)

// minorUnitExponents lists currencies whose minor unit is not 1/100.
var minorUnitExponents = map[string]int{
	"JPY": 0,
	"KRW": 0,
	"CLP": 0,
	"VND": 0,
	"BHD": 3,
	"KWD": 3,
}

// Normalizer converts amounts with a static rate table loaded once at startup.
//
// Rates are keyed "FROM_TO" and express how many TO units one FROM unit buys; the
// inverse direction is derived. Unknown pairs fall back to 1:1 and are reported as
// inexact so callers can decide what to do about it.
type Normalizer struct {
	rates map[string]float64
}

func NewNormalizer(rates map[string]float64) *Normalizer {
	n := &Normalizer{rates: make(map[string]float64, len(rates)*2)}
	for pair, rate := range rates {
		from, to, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(pair)), "_")
		if !ok || from == "" || to == "" || rate <= 0 {
			continue
		}
		n.rates[from+"_"+to] = rate
		if _, exists := n.rates[to+"_"+from]; !exists {
			n.rates[to+"_"+from] = 1 / rate
		}
	}
	return n
}

// Convert returns amount (minor units of from) expressed in minor units of to.
// exact is false when the pair is unknown and the 1:1 fallback was applied.
func (n *Normalizer) Convert(amount int64, from, to string) (converted int64, exact bool) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to {
		return amount, true
	}

	rate, ok := n.rates[from+"_"+to]
	if !ok {
		return amount, false
	}

	major := float64(amount) / math.Pow10(Exponent(from))
	return int64(math.Round(major * rate * math.Pow10(Exponent(to)))), true
}

// Exponent returns the number of decimal places of a currency's minor unit.
func Exponent(code string) int {
	if e, ok := minorUnitExponents[strings.ToUpper(code)]; ok {
		return e
	}
	return 2
}
