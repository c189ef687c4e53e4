package commands

import (
	"math"
	"strconv"
	"strings"
)

var fieldKeys = map[string]string{
	"qty":      "qty",
	"quantity": "qty",
	"unit":     "unit",
	"price":    "price",
	"cat":      "cat",
	"category": "cat",
	"note":     "note",
	"notes":    "note",
	"name":     "name",
}

type field struct {
	key   string
	value string
}

// splitFields separates key:value tokens with a known key from plain words.
func splitFields(args []string) ([]field, []string) {
	fields := make([]field, 0, len(args))
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, ":")
		key, known := fieldKeys[strings.ToLower(k)]
		if !ok || !known {
			rest = append(rest, arg)
			continue
		}
		fields = append(fields, field{key: key, value: strings.TrimSpace(v)})
	}
	return fields, rest
}

// splitArgs splits on whitespace, keeping double-quoted runs together with
// the quotes removed.
func splitArgs(s string) ([]string, error) {
	var (
		out     []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t' || r == '\n'):
			if started {
				out = append(out, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, invalid("unterminated quote")
	}
	if started {
		out = append(out, cur.String())
	}
	if len(out) == 0 {
		return nil, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	return out, nil
}

func parseNumber(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(raw), "$"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid("%s must be a number, got %q", name, raw)
	}
	return v, nil
}
