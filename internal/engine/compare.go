package engine

import (
	"strings"
	"time"
)

// compareStringsFold — сравнение строк без учёта регистра.
func compareStringsFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareOptionalInts — сравнение значений; оба nil → равны.
// Случай "один nil" сюда не попадает (отсекается presenceRank).
func compareOptionalInts(a, b *int) int {
	if a == nil || b == nil {
		return 0
	}
	return compareInts(*a, *b)
}

func compareOptionalDates(a, b *time.Time) int {
	if a == nil || b == nil {
		return 0
	}
	switch {
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
