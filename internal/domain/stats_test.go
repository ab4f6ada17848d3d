package domain

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		cell   string
		want   float64
		wantOK bool
	}{
		{"1", 1, true},
		{" 2.5 ", 2.5, true},
		{"-3e2", -300, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1,5", 0, false},
		{"inf", math.Inf(1), true},
		{"Infinity", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"+INF", math.Inf(1), true},
		{"1e400", math.Inf(1), true},
		{"-1e400", math.Inf(-1), true},
		{"infin", 0, false},
		{"0x1p3", 0, false},
		{"-0X10p0", 0, false},
		{"--1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, ok := ParseNumber(tt.cell)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.cell, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestParseNumber_NaN(t *testing.T) {
	for _, cell := range []string{"nan", "NaN", "-nan", "+NAN"} {
		got, ok := ParseNumber(cell)
		if !ok || !math.IsNaN(got) {
			t.Errorf("ParseNumber(%q) = %v, %v, want NaN, true", cell, got, ok)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Run("even count averages the middle values", func(t *testing.T) {
		s := Summarize([]float64{4, 1, 3, 2})
		if s.Count != 4 || s.Mean != 2.5 || s.Median != 2.5 || s.Min != 1 || s.Max != 4 {
			t.Errorf("unexpected stats: %+v", s)
		}
	})

	t.Run("odd count takes the middle value", func(t *testing.T) {
		s := Summarize([]float64{10, -1, 7})
		if s.Median != 7 {
			t.Errorf("expected median 7, got %v", s.Median)
		}
		if math.Abs(s.Mean-16.0/3) > 1e-12 {
			t.Errorf("expected mean 5.333.., got %v", s.Mean)
		}
	})

	t.Run("single value", func(t *testing.T) {
		s := Summarize([]float64{42})
		if s.Count != 1 || s.Mean != 42 || s.Median != 42 || s.Min != 42 || s.Max != 42 {
			t.Errorf("unexpected stats: %+v", s)
		}
	})

	t.Run("large values do not overflow the mean", func(t *testing.T) {
		s := Summarize([]float64{1e308, 1e308})
		if s.Mean != 1e308 {
			t.Errorf("expected mean 1e308, got %v", s.Mean)
		}
	})

	t.Run("infinite values propagate", func(t *testing.T) {
		s := Summarize([]float64{1, math.Inf(1), 3})
		if !math.IsInf(s.Mean, 1) || !math.IsInf(s.Max, 1) || s.Min != 1 || s.Median != 3 {
			t.Errorf("unexpected stats: %+v", s)
		}

		s = Summarize([]float64{math.Inf(1), math.Inf(-1)})
		if !math.IsNaN(s.Mean) {
			t.Errorf("expected NaN mean for inf and -inf, got %v", s.Mean)
		}
	})

	t.Run("leading NaN is kept as min and max", func(t *testing.T) {
		s := Summarize([]float64{math.NaN(), 2, 1})
		if !math.IsNaN(s.Min) || !math.IsNaN(s.Max) || s.Count != 3 {
			t.Errorf("unexpected stats: %+v", s)
		}
	})

	t.Run("does not sort the input", func(t *testing.T) {
		in := []float64{3, 1, 2}
		Summarize(in)
		if in[0] != 3 {
			t.Error("input was reordered")
		}
	})
}

func TestFormatFixed(t *testing.T) {
	tests := map[float64]string{
		2.5:          "2.5000",
		-1.23456:     "-1.2346",
		math.Inf(1):  "inf",
		math.Inf(-1): "-inf",
	}
	for v, want := range tests {
		if got := FormatFixed(v, 4); got != want {
			t.Errorf("FormatFixed(%v) = %q, want %q", v, got, want)
		}
	}
	if got := FormatFixed(math.NaN(), 4); got != "nan" {
		t.Errorf("FormatFixed(NaN) = %q, want nan", got)
	}
}

func TestStatsAccumulator_CountsNonFinite(t *testing.T) {
	acc := NewStatsAccumulator([]string{"v"})
	for _, cell := range []string{"1", "inf", "nan", "0x1p3", "x"} {
		acc.Add([]string{cell})
	}

	got := acc.Result()
	if len(got) != 1 || got[0].Count != 3 {
		t.Fatalf("expected 3 values counted, got %+v", got)
	}
}

func TestStatsAccumulator(t *testing.T) {
	acc := NewStatsAccumulator([]string{"text", "n", "mixed"})
	acc.Add([]string{"a", "1", "x"})
	acc.Add([]string{"b", "3"})
	acc.Add([]string{"c", "", "5"})
	acc.Add([]string{"d", "2", "7", "99"})

	got := acc.Result()
	if len(got) != 2 {
		t.Fatalf("expected 2 numeric columns, got %d: %+v", len(got), got)
	}

	if got[0].Name != "n" || got[0].Count != 3 || got[0].Median != 2 {
		t.Errorf("unexpected stats for n: %+v", got[0])
	}
	if got[1].Name != "mixed" || got[1].Count != 2 || got[1].Mean != 6 {
		t.Errorf("unexpected stats for mixed: %+v", got[1])
	}
}
