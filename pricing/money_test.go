package pricing

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{10.006, 10.01},
		{10.004, 10.0},
		{19.999, 20.0},
		{0, 0},
		{33.333333, 33.33},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(40); got != "40.00" {
		t.Fatalf("expected 40.00, got %q", got)
	}
	if got := FormatAmount(9.999); got != "10.00" {
		t.Fatalf("expected 10.00, got %q", got)
	}
}
