// Package aggregate computes derived metrics over a collection snapshot.
// Nothing here is stored: callers recompute on every read.
package aggregate

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// dec converts f for decimal arithmetic. Non-finite values count as 0.
func dec(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// Sum adds value(item) over items using decimal arithmetic, so that
// currency totals like 89.9 + 45.9 come out as 135.8.
func Sum[T any](items []T, value func(T) float64) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(dec(value(it)))
	}
	return total.InexactFloat64()
}

// SumIf adds value(item) over the items matching pred.
func SumIf[T any](items []T, pred func(T) bool, value func(T) float64) float64 {
	total := decimal.Zero
	for _, it := range items {
		if pred(it) {
			total = total.Add(dec(value(it)))
		}
	}
	return total.InexactFloat64()
}

// Sub returns a - b without float drift.
func Sub(a, b float64) float64 {
	return dec(a).Sub(dec(b)).InexactFloat64()
}

// Mul returns a * b without float drift (price times quantity).
func Mul(a, b float64) float64 {
	return dec(a).Mul(dec(b)).InexactFloat64()
}

// Count returns the number of items matching pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// CountBy groups items by key and counts each group.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, it := range items {
		out[key(it)]++
	}
	return out
}

// Ratio returns num/den, or 0 when den is zero or the result is not finite.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// Percent returns num/den*100 with the same zero-denominator guard as Ratio.
func Percent(num, den float64) float64 {
	return Ratio(num, den) * 100
}

// Average returns total/n, or 0 for n == 0.
func Average(total float64, n int) float64 {
	return Ratio(total, float64(n))
}

// Round rounds v to places decimal places, half away from zero.
func Round(v float64, places int32) float64 {
	return dec(v).Round(places).InexactFloat64()
}

// Rank returns up to limit items ordered by score descending.
// Ties keep their original relative order. The input slice is not modified.
// limit <= 0 means no limit.
func Rank[T any](items []T, score func(T) float64, limit int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return score(out[i]) > score(out[j]) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
