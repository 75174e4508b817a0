// Package filter derives the visible subset of a collection from typed criteria.
//
// Predicates are pure. Project keeps the source order, so projecting the same
// snapshot twice with the same criteria yields the same sequence.
package filter

import "strings"

// All is the categorical sentinel that disables a filter.
const All = "all"

// Predicate reports whether an item is visible.
type Predicate[T any] func(T) bool

// Search matches items whose designated text fields contain text, case-insensitively.
// Empty (or whitespace-only) text matches everything. Fields are ORed.
func Search[T any](text string, fields ...func(T) string) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}
	return func(item T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(item)), needle) {
				return true
			}
		}
		return false
	}
}

// Equals matches items whose field equals selected exactly.
// The All sentinel and the empty string disable the filter.
func Equals[T any](selected string, field func(T) string) Predicate[T] {
	if IsAll(selected) {
		return nil
	}
	return func(item T) bool { return field(item) == selected }
}

// Flag matches a boolean field against "active"/"inactive" (or "true"/"false").
// Any other selection disables the filter.
func Flag[T any](selected string, field func(T) bool) Predicate[T] {
	var want bool
	switch strings.ToLower(strings.TrimSpace(selected)) {
	case "active", "true":
		want = true
	case "inactive", "false":
		want = false
	default:
		return nil
	}
	return func(item T) bool { return field(item) == want }
}

// IsAll reports whether selected disables a categorical filter.
func IsAll(selected string) bool {
	s := strings.TrimSpace(selected)
	return s == "" || strings.EqualFold(s, All)
}

// Project returns the items for which every non-nil predicate holds (logical AND).
// The result preserves input order and never aliases items.
func Project[T any](items []T, preds ...Predicate[T]) []T {
	active := preds[:0:0]
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, active) {
			out = append(out, item)
		}
	}
	return out
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}
	return true
}
