package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// Predicate selects records. A nil Predicate places no constraint.
type Predicate[T any] func(T) bool

// Apply returns the records matching every non-nil predicate, in source order.
// The input slice is never modified and the result is never nil.
func Apply[T any](records []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(records))
outer:
	for _, r := range records {
		for _, p := range active {
			if !p(r) {
				continue outer
			}
		}
		out = append(out, r)
	}
	return out
}

// Unconstrained reports whether a selector value means "no filter"
func Unconstrained(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, "all")
}

// Equals matches records whose field equals value, ignoring case.
// Returns nil when value is empty or "all".
func Equals[T any](value string, field func(T) string) Predicate[T] {
	if Unconstrained(value) {
		return nil
	}
	want := fold(strings.TrimSpace(value))
	return func(r T) bool {
		return fold(strings.TrimSpace(field(r))) == want
	}
}

// Contains matches records where any of fields contains needle as a
// case-insensitive substring. Returns nil when needle is blank.
func Contains[T any](needle string, fields ...func(T) string) Predicate[T] {
	n := strings.TrimSpace(needle)
	if n == "" {
		return nil
	}
	want := fold(n)
	return func(r T) bool {
		for _, f := range fields {
			if strings.Contains(fold(f(r)), want) {
				return true
			}
		}
		return false
	}
}

// fold applies Unicode case folding. A Caser is stateful, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
