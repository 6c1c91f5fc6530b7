package render

import "math"

// BoundKind says how a Bound limits a range.
type BoundKind uint8

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one end of a Span.
type Bound struct {
	Kind  BoundKind
	Value int
}

// Incl returns an inclusive bound at v.
func Incl(v int) Bound { return Bound{Included, v} }

// Excl returns an exclusive bound at v.
func Excl(v int) Bound { return Bound{Excluded, v} }

// Span is an interval of row or column indices.
type Span struct {
	Start, End Bound
}

// Range returns the half-open span [lo, hi).
func Range(lo, hi int) Span { return Span{Incl(lo), Excl(hi)} }

// Through returns the closed span [lo, hi].
func Through(lo, hi int) Span { return Span{Incl(lo), Incl(hi)} }

// From returns the span [lo, ∞).
func From(lo int) Span { return Span{Start: Incl(lo)} }

// All returns the unbounded span.
func All() Span { return Span{} }

// Clamp resolves s against a length n into the half-open interval
// [lo, hi) with 0 <= lo <= hi <= n.
func (s Span) Clamp(n int) (lo, hi int) {
	switch s.Start.Kind {
	case Included:
		lo = s.Start.Value
	case Excluded:
		lo = succ(s.Start.Value)
	}
	switch s.End.Kind {
	case Included:
		hi = succ(s.End.Value)
	case Excluded:
		hi = s.End.Value
	default:
		hi = n
	}
	lo = min(max(lo, 0), n)
	hi = min(max(hi, lo), n)
	return lo, hi
}

// succ returns v+1, saturating at math.MaxInt.
func succ(v int) int {
	if v == math.MaxInt {
		return v
	}
	return v + 1
}
