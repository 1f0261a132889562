package period

import (
	"fmt"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
)

// Layout is the canonical string form of a period.
const Layout = "2006-01"

// Period identifies one calendar month, the unit of archive ingestion.
type Period struct {
	Year  int
	Month time.Month
}

// Parse converts a "YYYY-MM" string into a Period.
func Parse(s string) (Period, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Period{}, errors.Tracef(errors.InvalidArgument, "invalid period %q: expected YYYY-MM", s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// FromTime returns the period containing t, evaluated in UTC.
func FromTime(t time.Time) Period {
	u := t.UTC()
	return Period{Year: u.Year(), Month: u.Month()}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// IsZero reports whether p is the zero value.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Start returns the first instant of the month in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following month in UTC, so that
// [Start, End) covers the whole period.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	return FromTime(p.End())
}

// Compare orders periods chronologically: -1, 0 or +1.
func (p Period) Compare(o Period) int {
	switch {
	case p.Year != o.Year:
		if p.Year < o.Year {
			return -1
		}
		return 1
	case p.Month != o.Month:
		if p.Month < o.Month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Before reports whether p is strictly earlier than o.
func (p Period) Before(o Period) bool {
	return p.Compare(o) < 0
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(p.Start()) && u.Before(p.End())
}

// Range returns the full ordered sequence of periods from `from` through
// `to`, both inclusive. An inverted range yields nil.
func Range(from, to Period) []Period {
	if to.Before(from) {
		return nil
	}
	var out []Period
	for p := from; !to.Before(p); p = p.Next() {
		out = append(out, p)
	}
	return out
}

// Diff returns the ordered set difference expected − present. Both inputs
// may be unsorted; the result preserves expected's order. One pass over
// the expected sequence catches gaps before, inside and after the span of
// present periods alike.
func Diff(expected, present []Period) []Period {
	have := make(map[Period]struct{}, len(present))
	for _, p := range present {
		have[p] = struct{}{}
	}

	var missing []Period
	for _, p := range expected {
		if _, ok := have[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}
