package domain

import "time"

// DateRange selects the date window applied against a record's designated
// date field.
type DateRange string

const (
	RangeAll    DateRange = "all"
	RangeToday  DateRange = "today"
	RangeWeek   DateRange = "week"
	RangeMonth  DateRange = "month"
	RangeYear   DateRange = "year"
	RangeCustom DateRange = "custom"
)

// FilterSpec is the filter state applied to one domain's record collection:
// a free-text search term, named field-equality filters, and a date window.
// The zero value keeps every record.
type FilterSpec struct {
	Search string
	Fields map[string]string
	Range  DateRange

	// From/To bound the window when Range is RangeCustom. To is inclusive;
	// a zero To means "no upper bound".
	From time.Time
	To   time.Time
}

// IsZero reports whether the spec applies no constraints at all.
func (s FilterSpec) IsZero() bool {
	if s.Search != "" {
		return false
	}
	for _, v := range s.Fields {
		if v != "" {
			return false
		}
	}
	return !(s.Range != "" && s.Range != RangeAll)
}

// WithField returns a copy of the spec with the named filter set. An empty
// value clears the key.
func (s FilterSpec) WithField(key, value string) FilterSpec {
	fields := make(map[string]string, len(s.Fields)+1)
	for k, v := range s.Fields {
		fields[k] = v
	}
	if value == "" {
		delete(fields, key)
	} else {
		fields[key] = value
	}
	s.Fields = fields
	return s
}

// Filterable is the contract a record exposes to the predicate engine.
type Filterable interface {
	// SearchText lists the record's searchable text fields. Absent fields
	// appear as empty strings.
	SearchText() []string
	// FilterValue returns the record's value for a named filter key and
	// whether the record carries that field at all.
	FilterValue(key string) (string, bool)
	// FilterDate is the designated date field the date window applies to.
	FilterDate() time.Time
}
