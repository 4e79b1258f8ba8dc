// Package stats holds the pure, stateless statistics functions. Everything
// here is recomputed from the live collection on every call; nothing is
// cached, so there is nothing to invalidate on mutation.
package stats

import "math"

// NotAvailable is the sentinel returned when a value cannot be derived,
// e.g. the letter grade of a NaN score or the mode of an empty distribution.
const NotAvailable = "N/A"

// letterBound maps a lower score bound to its letter grade.
type letterBound struct {
	min    float64
	letter string
}

// letterScale is evaluated top-down; the first satisfied lower bound wins.
var letterScale = []letterBound{
	{93, "A"},
	{90, "A-"},
	{87, "B+"},
	{83, "B"},
	{80, "B-"},
	{77, "C+"},
	{73, "C"},
	{70, "C-"},
	{67, "D+"},
	{63, "D"},
	{60, "D-"},
}

// LetterGrade maps a numeric score to its letter grade. Scores below 60 map
// to "F"; a NaN score maps to the NotAvailable sentinel.
func LetterGrade(score float64) string {
	if math.IsNaN(score) {
		return NotAvailable
	}
	for _, bound := range letterScale {
		if score >= bound.min {
			return bound.letter
		}
	}
	return "F"
}

// Summary holds the aggregate of a numeric field over a collection.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Aggregate computes count, mean and extrema over values. An empty input
// yields the zero-value summary rather than an error.
func Aggregate(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sum := values[0]
	min := values[0]
	max := values[0]
	for _, v := range values[1:] {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return Summary{
		Count: len(values),
		Mean:  sum / float64(len(values)),
		Min:   min,
		Max:   max,
	}
}

// Distribution tallies a categorical field. Iteration order is the insertion
// order of each category's first occurrence, which is why this is not a bare
// map.
type Distribution struct {
	categories []string
	counts     map[string]int
}

// NewDistribution builds a distribution from a sequence of category values.
func NewDistribution(values []string) *Distribution {
	d := &Distribution{counts: make(map[string]int)}
	for _, v := range values {
		if _, seen := d.counts[v]; !seen {
			d.categories = append(d.categories, v)
		}
		d.counts[v]++
	}
	return d
}

// Categories returns the category labels in first-occurrence order.
func (d *Distribution) Categories() []string {
	out := make([]string, len(d.categories))
	copy(out, d.categories)
	return out
}

// Count returns the tally for a category, zero if never seen.
func (d *Distribution) Count(category string) int {
	return d.counts[category]
}

// Len returns the number of distinct categories.
func (d *Distribution) Len() int {
	return len(d.categories)
}

// MostFrequent returns the category with the highest count. Ties break in
// favor of the first-encountered category; an empty distribution yields the
// NotAvailable sentinel.
func (d *Distribution) MostFrequent() string {
	if len(d.categories) == 0 {
		return NotAvailable
	}

	best := d.categories[0]
	for _, c := range d.categories[1:] {
		if d.counts[c] > d.counts[best] {
			best = c
		}
	}
	return best
}
