// Package filter evaluates a FilterSpec against domain records. Matching is
// pure: the same record, spec, and instant always produce the same decision,
// and the three predicate groups (field equality, date window, free text) are
// independent ANDed constraints.
package filter

import (
	"strings"
	"time"

	"github.com/dnieto/retailcore/internal/domain"
)

// Matches reports whether the record passes every active constraint of the
// spec. Equality filters run before the substring scan so the cheap checks
// short-circuit first.
func Matches(r domain.Filterable, spec domain.FilterSpec, now time.Time) bool {
	for key, want := range spec.Fields {
		if want == "" {
			continue
		}
		got, ok := r.FilterValue(key)
		if !ok {
			return false
		}
		if strings.TrimSpace(got) != strings.TrimSpace(want) {
			return false
		}
	}

	if !inWindow(r.FilterDate(), spec, now) {
		return false
	}

	if term := domain.NormalizeText(spec.Search); term != "" {
		if !anyContains(r.SearchText(), term) {
			return false
		}
	}

	return true
}

// Apply filters a snapshot, preserving input order.
func Apply[T domain.Filterable](records []T, spec domain.FilterSpec, now time.Time) []T {
	kept := make([]T, 0, len(records))
	for _, r := range records {
		if Matches(r, spec, now) {
			kept = append(kept, r)
		}
	}
	return kept
}

func inWindow(date time.Time, spec domain.FilterSpec, now time.Time) bool {
	var start time.Time
	switch spec.Range {
	case "", domain.RangeAll:
		return true
	case domain.RangeToday:
		start = domain.StartOfDay(now)
	case domain.RangeWeek:
		start = now.AddDate(0, 0, -7)
	case domain.RangeMonth:
		start = now.AddDate(0, -1, 0)
	case domain.RangeYear:
		start = now.AddDate(-1, 0, 0)
	case domain.RangeCustom:
		if !spec.To.IsZero() && date.After(spec.To) {
			return false
		}
		start = spec.From
	default:
		return true
	}
	return !date.Before(start)
}

func anyContains(fields []string, term string) bool {
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
