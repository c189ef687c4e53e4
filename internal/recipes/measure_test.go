package recipes

import "testing"

func TestParseMeasurement(t *testing.T) {
	cases := []struct {
		in       string
		wantQty  float64
		wantUnit string
	}{
		{"", 1, "pcs"},
		{"  ", 1, "pcs"},
		{"to taste", 1, "pcs"},
		{"To Taste", 1, "pcs"},
		{"1/2 cup", 0.5, "cup"},
		{"2 cups", 2, "cup"},
		{"1.5 tbsp", 1.5, "tbsp"},
		{"3 Tablespoons", 3, "tbsp"},
		{"1 teaspoon", 1, "tsp"},
		{"2 lb", 2, "lbs"},
		{"8 ounces", 8, "oz"},
		{"200 grams", 200, "g"},
		{"1 kg", 1, "kg"},
		{"1 litre", 1, "liter"},
		{"250 ml", 250, "ml"},
		{"3 cloves", 3, "pcs"},
		{"pinch", 1, "pcs"},
		{"1/0 cup", 1, "cup"},
	}
	for _, tc := range cases {
		qty, unit := ParseMeasurement(tc.in)
		if qty != tc.wantQty || unit != tc.wantUnit {
			t.Fatalf("ParseMeasurement(%q) = (%v, %q), want (%v, %q)", tc.in, qty, unit, tc.wantQty, tc.wantUnit)
		}
	}
}
