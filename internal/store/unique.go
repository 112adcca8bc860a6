package store

import "github.com/dnieto/retailcore/internal/domain"

// Unique reports whether no record other than excludeID carries the candidate
// value for the field selected by extract. With fold true the comparison is
// case-insensitive (free-text identifiers such as emails or product codes);
// with fold false it is exact (document and invoice numbers).
//
// This is a client-side pre-check only: the backend stays authoritative and
// may still reject the write with its own uniqueness constraint.
func Unique[T Record](c *Collection[T], excludeID int64, value string, extract func(T) string, fold bool) bool {
	want := value
	if fold {
		want = domain.NormalizeText(value)
	}
	if want == "" {
		return true
	}

	for _, r := range c.All() {
		if r.RecordID() == excludeID {
			continue
		}
		got := extract(r)
		if fold {
			got = domain.NormalizeText(got)
		}
		if got == want {
			return false
		}
	}
	return true
}
