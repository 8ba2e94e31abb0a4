package model

import "testing"

func TestCentsFromDollars(t *testing.T) {
	cases := []struct {
		in   float64
		want Cents
	}{
		{0, 0},
		{1, 100},
		{12.34, 1234},
		{12.345, 1235}, // half-up
		{-3.5, -350},
		{0.005, 1},
	}
	for _, tc := range cases {
		if got := CentsFromDollars(tc.in); got != tc.want {
			t.Errorf("CentsFromDollars(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDollars(t *testing.T) {
	if got := Cents(1234).Dollars(); got != 12.34 {
		t.Errorf("Dollars() = %v, want 12.34", got)
	}
}

func TestCentsJSONRoundTrip(t *testing.T) {
	data, err := Cents(1234).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "12.34" {
		t.Errorf("MarshalJSON = %s, want 12.34", data)
	}

	var c Cents
	if err := c.UnmarshalJSON([]byte("99.99")); err != nil {
		t.Fatal(err)
	}
	if c != 9999 {
		t.Errorf("UnmarshalJSON(99.99) = %d, want 9999", c)
	}
	if err := c.UnmarshalJSON([]byte(`"text"`)); err == nil {
		t.Error("expected error for non-numeric money")
	}
}
