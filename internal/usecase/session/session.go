package session

import (
	"context"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/bar"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/calendar"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
)

// Usecase stamps exchange session and holiday columns onto stored bars.
// Session flags are evaluated with the calendar's authoritative IsOpenAt
// on every individual bar minute; holiday flags are date-granular. Both
// tiers merge through set-based updates, so re-annotating a range just
// rewrites the same values.
type Usecase struct {
	bars     bar.BarRepository
	registry *calendar.Registry

	chunkMonths int
	logger      logger.Interface
}

// NewUsecase creates a session annotator. chunkMonths bounds how many
// months of bar minutes are processed per batch.
func NewUsecase(bars bar.BarRepository, registry *calendar.Registry, chunkMonths int, logger logger.Interface) *Usecase {
	if chunkMonths < 1 {
		chunkMonths = 1
	}
	return &Usecase{
		bars:        bars,
		registry:    registry,
		chunkMonths: chunkMonths,
		logger:      logger,
	}
}

// Annotate stamps session flags, session labels and holiday flags for the
// bar minutes in [from, to), returning the count of open minutes per
// exchange code. A zero range annotates every stored bar.
func (u *Usecase) Annotate(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	full := from.IsZero() && to.IsZero()
	if full {
		first, last, err := u.bars.Bounds(ctx)
		if err != nil {
			return nil, errors.WithCode(errors.StoreFailure, err)
		}
		if first == nil {
			return map[string]int64{}, nil
		}
		from = first.UTC()
		to = last.UTC().Add(time.Minute)
	} else {
		if from.IsZero() || to.IsZero() || !from.Before(to) {
			return nil, errors.Tracef(errors.InvalidArgument, "invalid annotation range [%s, %s)", from, to)
		}
		from = from.UTC().Truncate(time.Minute)
		to = ceilMinute(to.UTC())
	}

	minutesOpen := make(map[string]int64, len(u.registry.Codes()))
	for _, code := range u.registry.Codes() {
		minutesOpen[code] = 0
	}

	var stamped int64
	for cursor := from; cursor.Before(to); {
		end := chunkEnd(cursor, u.chunkMonths, to)

		minutes, err := u.bars.MinuteTimestamps(ctx, cursor, end)
		if err != nil {
			return nil, errors.WithCode(errors.StoreFailure, err)
		}
		if len(minutes) == 0 {
			cursor = end
			continue
		}

		holidayBatch, err := u.holidayBatch(ctx, minutes)
		if err != nil {
			return nil, err
		}
		if _, err := u.bars.UpdateHolidayBatch(ctx, holidayBatch); err != nil {
			return nil, errors.WithCode(errors.StoreFailure, err)
		}

		sessionBatch, err := u.sessionBatch(ctx, minutes, minutesOpen)
		if err != nil {
			return nil, err
		}
		updated, err := u.bars.UpdateSessionBatch(ctx, sessionBatch)
		if err != nil {
			return nil, errors.WithCode(errors.StoreFailure, err)
		}
		stamped += updated

		cursor = end
	}

	u.logger.InfoContext(ctx, "bars annotated",
		logger.NewField("from", from),
		logger.NewField("to", to),
		logger.NewField("minutes", stamped),
	)
	return minutesOpen, nil
}

// holidayBatch derives the date-granular holiday flags for the chunk's
// minutes. Dates are the bars' UTC calendar dates; each is checked
// against the designated exchanges' holiday sets, prefetched once per
// chunk with a day of slack on both ends for timezone skew.
func (u *Usecase) holidayBatch(ctx context.Context, minutes []time.Time) (bar.HolidayBatch, error) {
	first := minutes[0].UTC()
	last := minutes[len(minutes)-1].UTC()

	primarySet, err := u.holidaysFor(ctx, u.registry.PrimaryHoliday(), first, last)
	if err != nil {
		return bar.HolidayBatch{}, err
	}
	secondarySet, err := u.holidaysFor(ctx, u.registry.SecondaryHoliday(), first, last)
	if err != nil {
		return bar.HolidayBatch{}, err
	}

	var batch bar.HolidayBatch
	seen := make(map[string]struct{})
	for _, minute := range minutes {
		day := minute.UTC().Format(calendar.DateLayout)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}

		_, primary := primarySet[day]
		_, secondary := secondarySet[day]
		batch.Days = append(batch.Days, day)
		batch.Primary = append(batch.Primary, primary)
		batch.Secondary = append(batch.Secondary, secondary)
	}
	return batch, nil
}

func (u *Usecase) holidaysFor(ctx context.Context, code string, first, last time.Time) (map[string]struct{}, error) {
	provider, err := u.registry.Provider(code)
	if err != nil {
		return nil, err
	}
	set, err := provider.HolidaysIn(ctx, first.AddDate(0, 0, -1), last.AddDate(0, 0, 1))
	if err != nil {
		return nil, errors.WithCode(errors.CalendarLookupFailure, err)
	}
	return set, nil
}

// sessionBatch evaluates every registered exchange at every bar minute.
// The open/closed flag comes from IsOpenAt on the exact minute; a date's
// value is never broadcast to its other minutes. minutesOpen is
// incremented in place per open flag.
func (u *Usecase) sessionBatch(ctx context.Context, minutes []time.Time, minutesOpen map[string]int64) (bar.SessionBatch, error) {
	codes := u.registry.Codes()

	batch := bar.SessionBatch{
		Timestamps: minutes,
		Flags:      make([][]bool, len(codes)),
	}

	for i, code := range codes {
		provider, err := u.registry.Provider(code)
		if err != nil {
			return bar.SessionBatch{}, err
		}

		flags := make([]bool, len(minutes))
		for j, minute := range minutes {
			open, err := provider.IsOpenAt(ctx, minute)
			if err != nil {
				return bar.SessionBatch{}, errors.WithCode(errors.CalendarLookupFailure, err)
			}
			flags[j] = open
			if open {
				minutesOpen[code]++
			}
		}
		batch.Flags[i] = flags
	}

	labelsRef1, err := u.labels(ctx, u.registry.Ref1(), minutes)
	if err != nil {
		return bar.SessionBatch{}, err
	}
	labelsRef2, err := u.labels(ctx, u.registry.Ref2(), minutes)
	if err != nil {
		return bar.SessionBatch{}, err
	}
	batch.LabelsRef1 = labelsRef1
	batch.LabelsRef2 = labelsRef2

	return batch, nil
}

func (u *Usecase) labels(ctx context.Context, code string, minutes []time.Time) ([]string, error) {
	provider, err := u.registry.Provider(code)
	if err != nil {
		return nil, err
	}

	l := &labeler{
		provider: provider,
		cache:    make(map[string][]calendar.Interval),
	}

	out := make([]string, len(minutes))
	for i, minute := range minutes {
		label, err := l.label(ctx, minute)
		if err != nil {
			return nil, errors.WithCode(errors.CalendarLookupFailure, err)
		}
		out[i] = label
	}
	return out, nil
}

// labeler names the position of a minute inside its exchange-local
// trading day. The day's session intervals are fetched once per local
// date and reused for every minute of that date.
type labeler struct {
	provider calendar.Provider
	cache    map[string][]calendar.Interval
}

func (l *labeler) label(ctx context.Context, minute time.Time) (string, error) {
	key := minute.In(l.provider.Timezone()).Format(calendar.DateLayout)
	sessions, ok := l.cache[key]
	if !ok {
		var err error
		sessions, err = l.provider.SessionsOn(ctx, minute)
		if err != nil {
			return "", err
		}
		l.cache[key] = sessions
	}

	switch {
	case len(sessions) == 0:
		return bar.SessionClosed, nil
	case len(sessions) == 1:
		if within(sessions[0], minute) {
			return bar.SessionOpen, nil
		}
		return bar.SessionClosed, nil
	default:
		for i, s := range sessions {
			if within(s, minute) {
				if i == 0 {
					return bar.SessionMorning, nil
				}
				return bar.SessionAfternoon, nil
			}
		}
		lastOpen := sessions[len(sessions)-1].Open
		if !minute.Before(sessions[0].Close) && minute.Before(lastOpen) {
			return bar.SessionBreak, nil
		}
		return bar.SessionClosed, nil
	}
}

func within(s calendar.Interval, t time.Time) bool {
	return !t.Before(s.Open) && t.Before(s.Close)
}

func chunkEnd(cursor time.Time, months int, to time.Time) time.Time {
	monthStart := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := monthStart.AddDate(0, months, 0)
	if end.After(to) {
		return to
	}
	return end
}

func ceilMinute(t time.Time) time.Time {
	truncated := t.Truncate(time.Minute)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Minute)
}
