package render

import (
	"math"
	"testing"
)

func TestSpanClamp(t *testing.T) {
	tests := []struct {
		name   string
		span   Span
		n      int
		lo, hi int
	}{
		{"all", All(), 10, 0, 10},
		{"range", Range(2, 5), 10, 2, 5},
		{"through", Through(2, 5), 10, 2, 6},
		{"from", From(7), 10, 7, 10},
		{"excluded start", Span{Excl(2), Excl(5)}, 10, 3, 5},
		{"negative start", Range(-3, 4), 10, 0, 4},
		{"past end", Through(8, 20), 10, 8, 10},
		{"start past end", From(12), 10, 10, 10},
		{"inverted", Range(6, 3), 10, 6, 6},
		{"empty buffer", All(), 0, 0, 0},
		{"through max int", Through(0, math.MaxInt), 10, 0, 10},
		{"excluded max int start", Span{Excl(math.MaxInt), Excl(5)}, 10, 10, 10},
		{"min int start", Span{Incl(math.MinInt), Incl(3)}, 10, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.span.Clamp(tt.n)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("Clamp(%d) = [%d, %d), want [%d, %d)", tt.n, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}
