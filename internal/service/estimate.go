package service

import (
	"strings"
	"time"
)

// yearsRange is an expected min/max resolution window in whole years.
type yearsRange struct {
	Min int
	Max int
}

// resolutionTable maps normalized categories to expected resolution windows.
// Keyed on the squashed form produced by normalizeCategory.
var resolutionTable = map[string]yearsRange{
	"healthcare":      {5, 10},
	"education":       {5, 15},
	"infrastructure":  {3, 10},
	"lawandorder":     {3, 7},
	"corruption":      {10, 20},
	"digitalservices": {2, 5},
	"employment":      {5, 15},
	"welfareschemes":  {2, 5},
}

// normalizeCategory lowercases and strips whitespace, hyphens, underscores
// and ampersand spacing so that "Healthcare", "health-care", "Law & Order"
// and "law-and-order" all resolve to the same table key.
func normalizeCategory(category string) string {
	s := strings.ToLower(category)
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, s)
	return s
}

// Estimate looks up the expected resolution window for a category.
// Unknown categories report ok=false and the caller must not attach
// estimate fields.
func Estimate(category string) (minYears, maxYears int, ok bool) {
	r, found := resolutionTable[normalizeCategory(category)]
	if !found {
		return 0, 0, false
	}
	return r.Min, r.Max, true
}

// ProjectDates adds whole calendar years to the instant nowMillis and
// returns the projected bounds as epoch milliseconds. Calendar-aware:
// month and day carry over, including Feb 29 normalization on non-leap
// target years. Computed exactly once at creation time and never
// recomputed if the lookup table changes later.
func ProjectDates(nowMillis int64, minYears, maxYears int) (fromMillis, toMillis int64) {
	t := time.UnixMilli(nowMillis).UTC()
	fromMillis = t.AddDate(minYears, 0, 0).UnixMilli()
	toMillis = t.AddDate(maxYears, 0, 0).UnixMilli()
	return fromMillis, toMillis
}
