package metrics

// AppendValues tags every value with category and hue and appends them in order.
func (t *Table) AppendValues(category, hue string, values []float64) {
	for _, v := range values {
		t.Rows = append(t.Rows, Row{Value: v, Category: category, Hue: hue})
	}
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Categories returns the distinct category tags in first-appearance order.
func (t Table) Categories() []string {
	return distinct(t.Rows, func(r Row) string { return r.Category })
}

// Hues returns the distinct hue tags in first-appearance order.
func (t Table) Hues() []string {
	return distinct(t.Rows, func(r Row) string { return r.Hue })
}

// Values returns the values tagged with category, in row order.
func (t Table) Values(category string) []float64 {
	var out []float64
	for _, r := range t.Rows {
		if r.Category == category {
			out = append(out, r.Value)
		}
	}
	return out
}

// GroupValues returns the values tagged with both category and hue.
func (t Table) GroupValues(category, hue string) []float64 {
	var out []float64
	for _, r := range t.Rows {
		if r.Category == category && r.Hue == hue {
			out = append(out, r.Value)
		}
	}
	return out
}

// CountByCategory returns the number of rows per category tag.
func (t Table) CountByCategory() map[string]int {
	counts := make(map[string]int)
	for _, r := range t.Rows {
		counts[r.Category]++
	}
	return counts
}

func distinct(rows []Row, key func(Row) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
