package domain

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ColumnStats summarizes the numeric values of one column
type ColumnStats struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// StatsAccumulator collects parsed numeric values per column in header order
type StatsAccumulator struct {
	header []string
	values [][]float64
}

// NewStatsAccumulator creates an accumulator for the given header
func NewStatsAccumulator(header []string) *StatsAccumulator {
	return &StatsAccumulator{
		header: append([]string(nil), header...),
		values: make([][]float64, len(header)),
	}
}

// Add records one data row. Empty and non-numeric cells are skipped silently.
func (a *StatsAccumulator) Add(record []string) {
	for i := range a.header {
		if i >= len(record) {
			return
		}
		if v, ok := ParseNumber(record[i]); ok {
			a.values[i] = append(a.values[i], v)
		}
	}
}

// Result returns stats for every column with at least one value,
// in header order.
func (a *StatsAccumulator) Result() []ColumnStats {
	out := make([]ColumnStats, 0, len(a.header))
	for i, name := range a.header {
		if len(a.values[i]) == 0 {
			continue
		}
		s := Summarize(a.values[i])
		s.Name = name
		out = append(out, s)
	}
	return out
}

// ParseNumber parses a cell as a float64. Decimal and exponent forms are
// accepted, as are "inf", "infinity" and "nan" in any case with an optional
// sign. Magnitudes beyond float64 become ±Inf. Hexadecimal floats are rejected.
func ParseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}

	unsigned := strings.TrimLeft(cell, "+-")
	if len(cell)-len(unsigned) > 1 {
		return 0, false
	}
	if strings.EqualFold(unsigned, "nan") {
		return math.NaN(), true
	}
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// on overflow v is ±Inf
	return v, true
}

// Summarize computes count, mean, median, min and max of a non-empty sample.
// Min and max scan in input order and keep the first value when
// comparisons fail, so a leading NaN is reported as is.
func Summarize(values []float64) ColumnStats {
	if len(values) == 0 {
		return ColumnStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return ColumnStats{
		Count:  len(values),
		Mean:   mean(values),
		Median: median(sorted),
		Min:    lo,
		Max:    hi,
	}
}

// mean sums directly and falls back to a running mean when finite
// values overflow the sum
func mean(values []float64) float64 {
	var sum float64
	finite := true
	for _, v := range values {
		sum += v
		if math.IsInf(v, 0) || math.IsNaN(v) {
			finite = false
		}
	}
	if !finite || !math.IsInf(sum, 0) {
		return sum / float64(len(values))
	}

	var m float64
	for i, v := range values {
		m += (v - m) / float64(i+1)
	}
	return m
}

// median expects sorted input; even-sized samples average the two middle values
func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// MarshalJSON writes non-finite figures as the strings "inf", "-inf" and
// "nan", which JSON numbers cannot hold
func (s ColumnStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string `json:"name"`
		Count  int    `json:"count"`
		Mean   any    `json:"mean"`
		Median any    `json:"median"`
		Min    any    `json:"min"`
		Max    any    `json:"max"`
	}{
		Name:   s.Name,
		Count:  s.Count,
		Mean:   jsonNumber(s.Mean),
		Median: jsonNumber(s.Median),
		Min:    jsonNumber(s.Min),
		Max:    jsonNumber(s.Max),
	})
}

func jsonNumber(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return FormatFixed(v, 0)
	}
	return v
}

// FormatFixed formats v with prec decimals. Non-finite values are written
// "inf", "-inf" and "nan".
func FormatFixed(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
