package calendar

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
)

// Exchange is the builtin Provider implementation, driven entirely by a
// Definition. All parsing happens at construction; lookups never fail.
type Exchange struct {
	code      string
	name      string
	loc       *time.Location
	weekend   map[time.Weekday]bool
	schedules []schedule
	holidays  map[string]struct{}
}

type schedule struct {
	effectiveFrom time.Time // local midnight; zero means since inception
	sessions      []sessionWindow
}

type sessionWindow struct {
	openMinute  int
	closeMinute int
}

var _ Provider = (*Exchange)(nil)

// NewExchange validates a Definition and compiles it into an Exchange.
func NewExchange(def Definition) (*Exchange, error) {
	if def.Code == "" {
		return nil, errors.NewTracer(errors.InvalidArgument, "exchange code is empty")
	}

	loc, err := time.LoadLocation(def.Timezone)
	if err != nil {
		return nil, errors.Tracef(errors.InvalidArgument, "exchange %s: unknown timezone %q", def.Code, def.Timezone)
	}

	weekend, err := parseWeekend(def.Weekend)
	if err != nil {
		return nil, errors.Tracef(errors.InvalidArgument, "exchange %s: %v", def.Code, err)
	}

	if len(def.Schedules) == 0 {
		return nil, errors.Tracef(errors.InvalidArgument, "exchange %s: no schedules", def.Code)
	}
	schedules := make([]schedule, 0, len(def.Schedules))
	for _, s := range def.Schedules {
		compiled, err := compileSchedule(s, loc)
		if err != nil {
			return nil, errors.Tracef(errors.InvalidArgument, "exchange %s: %v", def.Code, err)
		}
		schedules = append(schedules, compiled)
	}
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].effectiveFrom.Before(schedules[j].effectiveFrom)
	})

	holidays := make(map[string]struct{}, len(def.Holidays))
	for _, h := range def.Holidays {
		if _, err := time.ParseInLocation(DateLayout, h, loc); err != nil {
			return nil, errors.Tracef(errors.InvalidArgument, "exchange %s: invalid holiday date %q", def.Code, h)
		}
		holidays[h] = struct{}{}
	}

	return &Exchange{
		code:      def.Code,
		name:      def.Name,
		loc:       loc,
		weekend:   weekend,
		schedules: schedules,
		holidays:  holidays,
	}, nil
}

func parseWeekend(names []string) (map[time.Weekday]bool, error) {
	if len(names) == 0 {
		return map[time.Weekday]bool{time.Saturday: true, time.Sunday: true}, nil
	}
	weekend := make(map[time.Weekday]bool, len(names))
	for _, name := range names {
		matched := false
		for day := time.Sunday; day <= time.Saturday; day++ {
			if strings.EqualFold(day.String(), name) {
				weekend[day] = true
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
	}
	return weekend, nil
}

func compileSchedule(s Schedule, loc *time.Location) (schedule, error) {
	out := schedule{}
	if s.EffectiveFrom != "" {
		from, err := time.ParseInLocation(DateLayout, s.EffectiveFrom, loc)
		if err != nil {
			return out, fmt.Errorf("invalid effective_from %q", s.EffectiveFrom)
		}
		out.effectiveFrom = from
	}

	if len(s.Sessions) == 0 {
		return out, fmt.Errorf("schedule has no sessions")
	}
	for _, sess := range s.Sessions {
		open, err := parseClock(sess.Open)
		if err != nil {
			return out, fmt.Errorf("invalid session open %q", sess.Open)
		}
		close, err := parseClock(sess.Close)
		if err != nil {
			return out, fmt.Errorf("invalid session close %q", sess.Close)
		}
		if open >= close {
			return out, fmt.Errorf("session %s-%s does not advance", sess.Open, sess.Close)
		}
		out.sessions = append(out.sessions, sessionWindow{openMinute: open, closeMinute: close})
	}
	sort.Slice(out.sessions, func(i, j int) bool {
		return out.sessions[i].openMinute < out.sessions[j].openMinute
	})
	for i := 1; i < len(out.sessions); i++ {
		if out.sessions[i].openMinute < out.sessions[i-1].closeMinute {
			return out, fmt.Errorf("sessions overlap")
		}
	}
	return out, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Code returns the registry code of the exchange.
func (e *Exchange) Code() string {
	return e.code
}

// Name returns the human-readable exchange name.
func (e *Exchange) Name() string {
	return e.name
}

// Timezone returns the exchange's local timezone.
func (e *Exchange) Timezone() *time.Location {
	return e.loc
}

// scheduleFor picks the schedule in force on the given local instant: the
// latest one whose effective date is not after it.
func (e *Exchange) scheduleFor(local time.Time) schedule {
	current := e.schedules[0]
	for _, s := range e.schedules[1:] {
		if local.Before(s.effectiveFrom) {
			break
		}
		current = s
	}
	return current
}

// IsOpenAt reports whether the exchange trades at the exact instant t.
func (e *Exchange) IsOpenAt(_ context.Context, t time.Time) (bool, error) {
	local := t.In(e.loc)
	if e.weekend[local.Weekday()] {
		return false, nil
	}
	if _, holiday := e.holidays[local.Format(DateLayout)]; holiday {
		return false, nil
	}

	minute := local.Hour()*60 + local.Minute()
	for _, session := range e.scheduleFor(local).sessions {
		if minute >= session.openMinute && minute < session.closeMinute {
			return true, nil
		}
	}
	return false, nil
}

// SessionsOn returns the UTC open intervals of the local calendar day
// containing `day`.
func (e *Exchange) SessionsOn(_ context.Context, day time.Time) ([]Interval, error) {
	local := day.In(e.loc)
	if e.weekend[local.Weekday()] {
		return nil, nil
	}
	if _, holiday := e.holidays[local.Format(DateLayout)]; holiday {
		return nil, nil
	}

	year, month, dom := local.Date()
	sessions := e.scheduleFor(local).sessions
	intervals := make([]Interval, 0, len(sessions))
	for _, session := range sessions {
		open := time.Date(year, month, dom, session.openMinute/60, session.openMinute%60, 0, 0, e.loc)
		close := time.Date(year, month, dom, session.closeMinute/60, session.closeMinute%60, 0, 0, e.loc)
		intervals = append(intervals, Interval{Open: open.UTC(), Close: close.UTC()})
	}
	return intervals, nil
}

// HolidaysIn returns the holiday dates whose local day overlaps [from, to).
func (e *Exchange) HolidaysIn(_ context.Context, from, to time.Time) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for date := range e.holidays {
		dayStart, err := time.ParseInLocation(DateLayout, date, e.loc)
		if err != nil {
			return nil, errors.Tracef(errors.CalendarLookupFailure, "exchange %s: corrupt holiday date %q", e.code, date)
		}
		dayEnd := dayStart.AddDate(0, 0, 1)
		if dayStart.Before(to) && dayEnd.After(from) {
			out[date] = struct{}{}
		}
	}
	return out, nil
}
