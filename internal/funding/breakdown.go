// Package funding holds the static funding-breakdown datasets behind
// the dashboard's chart widgets, plus the headline formatting applied
// to their totals.
package funding

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Entry is one slice of a funding breakdown chart.
type Entry struct {
	Label          string  `json:"label"`
	Country        string  `json:"country,omitempty"`
	AmountMillions float64 `json:"amount_millions"`
}

// Series is a named breakdown rendered as one chart.
type Series struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Total sums the series in millions, rounded to one decimal to match
// the published single-decimal amounts.
func (s Series) Total() float64 {
	return roundTenth(sum(s.Entries))
}

// Breakdown returns the three published series: disclosed startup
// investments, government commitments, and development programs.
func Breakdown() []Series {
	return []Series{
		{Name: "Disclosed Investments", Entries: disclosedInvestments},
		{Name: "Government Commitments", Entries: governmentCommitments},
		{Name: "Development Programs", Entries: developmentPrograms},
	}
}

// EntryCount is the number of individual breakdown entries across all
// series.
func EntryCount() int {
	return len(disclosedInvestments) + len(governmentCommitments) + len(developmentPrograms)
}

// GrandTotalMillions is the combined total across all series.
func GrandTotalMillions() float64 {
	var total float64
	for _, s := range Breakdown() {
		total += s.Total()
	}
	return roundTenth(total)
}

// Headline renders the total as the dashboard's headline figure, e.g.
// "$1.1B+" for 1,103.2 million. Totals under a billion render in
// millions ("$803.2M+").
func Headline() string {
	return headlineFor(GrandTotalMillions())
}

func headlineFor(millions float64) string {
	if millions >= 1000 {
		billions := math.Floor(millions/1000*10) / 10
		return fmt.Sprintf("$%.1fB+", billions)
	}
	return fmt.Sprintf("$%.1fM+", millions)
}

// Verification spells out the arithmetic behind the headline so readers
// can check it: "803.2 + 200.0 + 100.0 = 1,103.2 million ($1.1B+)".
func Verification() string {
	series := Breakdown()
	parts := make([]string, 0, len(series))
	for _, s := range series {
		parts = append(parts, fmt.Sprintf("%.1f", s.Total()))
	}
	total := GrandTotalMillions()
	return fmt.Sprintf("%s = %s million (%s)",
		strings.Join(parts, " + "), groupThousands(total), headlineFor(total))
}

func sum(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.AmountMillions
	}
	return total
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// groupThousands formats a one-decimal float with comma-grouped
// integer digits, e.g. 1103.2 -> "1,103.2".
func groupThousands(v float64) string {
	s := strconv.FormatFloat(roundTenth(v), 'f', 1, 64)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String() + fracPart
}
