package recipes

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingAmount = regexp.MustCompile(`^(\d+/\d+|\d+(?:\.\d+)?)\s*`)

type unitRule struct {
	unit    string
	needles []string
}

// Checked in order against the lowered remainder of the measure.
var unitRules = []unitRule{
	{"cup", []string{"cup", "c "}},
	{"tbsp", []string{"tablespoon", "tbsp"}},
	{"tsp", []string{"teaspoon", "tsp"}},
	{"lbs", []string{"pound", "lb"}},
	{"oz", []string{"ounce", "oz"}},
	{"g", []string{"gram", "g "}},
	{"kg", []string{"kilogram", "kg"}},
	{"liter", []string{"liter", "litre", "l "}},
	{"ml", []string{"milliliter", "ml"}},
}

// ParseMeasurement splits a free-text measure such as "1/2 cup" or
// "200 grams" into a quantity and a normalized unit. Unknown units are pcs.
func ParseMeasurement(measure string) (quantity float64, unit string) {
	trimmed := strings.TrimSpace(measure)
	if trimmed == "" || strings.EqualFold(trimmed, "to taste") {
		return 1, "pcs"
	}

	quantity = 1
	rest := trimmed
	if m := leadingAmount.FindStringSubmatch(trimmed); m != nil {
		quantity = parseAmount(m[1])
		rest = trimmed[len(m[0]):]
	}

	lowered := strings.ToLower(rest)
	for _, rule := range unitRules {
		for _, needle := range rule.needles {
			if strings.Contains(lowered, needle) {
				return quantity, rule.unit
			}
		}
	}
	return quantity, "pcs"
}

func parseAmount(s string) float64 {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 1
		}
		return n / d
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 1
	}
	return v
}
