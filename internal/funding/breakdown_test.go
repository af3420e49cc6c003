package funding

import (
	"math"
	"testing"
)

func TestBreakdown_EntryCountAndSeriesTotals(t *testing.T) {
	if got := EntryCount(); got != 159 {
		t.Fatalf("entry count = %d, want 159", got)
	}

	wantTotals := map[string]float64{
		"Disclosed Investments":  803.2,
		"Government Commitments": 200.0,
		"Development Programs":   100.0,
	}
	for _, s := range Breakdown() {
		want, ok := wantTotals[s.Name]
		if !ok {
			t.Fatalf("unexpected series %q", s.Name)
		}
		if got := s.Total(); math.Abs(got-want) > 1e-9 {
			t.Fatalf("series %q total = %v, want %v", s.Name, got, want)
		}
	}
}

func TestGrandTotal(t *testing.T) {
	if got := GrandTotalMillions(); math.Abs(got-1103.2) > 1e-9 {
		t.Fatalf("grand total = %v, want 1103.2", got)
	}
}

func TestHeadline(t *testing.T) {
	if got := Headline(); got != "$1.1B+" {
		t.Fatalf("headline = %q, want $1.1B+", got)
	}
}

func TestHeadlineFor_SubBillion(t *testing.T) {
	if got := headlineFor(803.2); got != "$803.2M+" {
		t.Fatalf("sub-billion headline = %q", got)
	}
	// floor, not round: 1,999.9M is still $1.9B+
	if got := headlineFor(1999.9); got != "$1.9B+" {
		t.Fatalf("headline = %q, want $1.9B+", got)
	}
}

func TestVerification_LiteralString(t *testing.T) {
	want := "803.2 + 200.0 + 100.0 = 1,103.2 million ($1.1B+)"
	if got := Verification(); got != want {
		t.Fatalf("verification string = %q, want %q", got, want)
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[float64]string{
		0.0:       "0.0",
		999.9:     "999.9",
		1103.2:    "1,103.2",
		1234567.8: "1,234,567.8",
	}
	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Fatalf("groupThousands(%v) = %q, want %q", in, got, want)
		}
	}
}
