package value

import (
	"strconv"
	"strings"
)

// Compare orders two values under a single total order over the union
// of all kinds: values are ranked by kind first (the Kind declaration
// order), then by value within a kind. No coercion takes place, so the
// order is defined for every pair of values. Returns -1, 0, or 1.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	return sameKindCompare(a, b)
}

func sameKindCompare(a, b Value) int {
	switch a.kind {
	case KindBool:
		// false sorts before true.
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		}
		return 1
	case KindInt:
		return a.i.Cmp(b.i)
	case KindFloat:
		switch {
		case a.f < b.f:
			return -1
		case a.f > b.f:
			return 1
		}
		return 0
	case KindDecimal:
		return a.d.Cmp(b.d)
	case KindString:
		return strings.Compare(a.s, b.s)
	case KindTimestamp:
		switch {
		case a.t.Before(b.t):
			return -1
		case a.t.After(b.t):
			return 1
		}
		return 0
	}
	return 0
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
