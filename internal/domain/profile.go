package domain

import "sort"

// ValueCount is a value and the number of rows it occurred in
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnProfile is the missing-count and value-frequency summary of one column
type ColumnProfile struct {
	Name      string       `json:"name"`
	Missing   int          `json:"missing"`
	TopValues []ValueCount `json:"top_values"`
}

// Profile is the report produced by the CSV profiler
type Profile struct {
	Rows    int             `json:"rows"`
	Columns []ColumnProfile `json:"columns"`
}

// columnTally counts values in first-encountered order
type columnTally struct {
	missing int
	index   map[string]int
	values  []ValueCount
}

// Profiler accumulates per-column missing counts and value frequencies
// over a single pass of rows. Columns are tracked by header position.
type Profiler struct {
	header []string
	rows   int
	tally  []*columnTally
}

// NewProfiler creates a profiler for the given header
func NewProfiler(header []string) *Profiler {
	tally := make([]*columnTally, len(header))
	for i := range tally {
		tally[i] = &columnTally{index: make(map[string]int)}
	}
	return &Profiler{
		header: append([]string(nil), header...),
		tally:  tally,
	}
}

// Add records one data row. Cells beyond the header are ignored and
// absent cells count as missing.
func (p *Profiler) Add(record []string) {
	p.rows++
	for i, t := range p.tally {
		if i >= len(record) || record[i] == "" {
			t.missing++
			continue
		}

		value := record[i]
		if pos, ok := t.index[value]; ok {
			t.values[pos].Count++
			continue
		}
		t.index[value] = len(t.values)
		t.values = append(t.values, ValueCount{Value: value, Count: 1})
	}
}

// Rows returns the number of data rows seen so far
func (p *Profiler) Rows() int {
	return p.rows
}

// Result builds the profile keeping at most top values per column.
// A top of zero or less yields empty value lists.
func (p *Profiler) Result(top int) *Profile {
	profile := &Profile{
		Rows:    p.rows,
		Columns: make([]ColumnProfile, len(p.header)),
	}

	for i, name := range p.header {
		profile.Columns[i] = ColumnProfile{
			Name:      name,
			Missing:   p.tally[i].missing,
			TopValues: TopN(p.tally[i].values, top),
		}
	}

	return profile
}

// TopN returns the n most frequent values. Ties keep their input order.
func TopN(values []ValueCount, n int) []ValueCount {
	if n <= 0 {
		return []ValueCount{}
	}

	ranked := make([]ValueCount, len(values))
	copy(ranked, values)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
