package calendar

import (
	"context"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
)

// DateLayout is the wire form of exchange-local calendar dates.
const DateLayout = "2006-01-02"

// Interval is one contiguous open window expressed as UTC instants,
// half-open [Open, Close).
type Interval struct {
	Open  time.Time
	Close time.Time
}

// Provider answers calendar questions for a single exchange.
//
//go:generate mockgen -source=calendar.go -destination=mock/calendar_mock.go -package=mock
type Provider interface {
	// Code returns the registry code of the exchange.
	Code() string
	// Timezone returns the exchange's local timezone.
	Timezone() *time.Location
	// IsOpenAt reports whether the exchange is open for trading at the
	// exact instant t, accounting for weekends, holidays, intraday
	// closures and historical schedule changes.
	IsOpenAt(ctx context.Context, t time.Time) (bool, error)
	// SessionsOn returns the open intervals of the exchange-local calendar
	// day containing `day`, as UTC instants. Weekends and holidays yield an
	// empty slice.
	SessionsOn(ctx context.Context, day time.Time) ([]Interval, error)
	// HolidaysIn returns the exchange-local holiday dates (YYYY-MM-DD)
	// whose day overlaps [from, to).
	HolidaysIn(ctx context.Context, from, to time.Time) (map[string]struct{}, error)
}

// Registry holds the configured exchanges in a stable order. The order
// drives schema column generation and the annotation loop.
type Registry struct {
	codes     []string
	providers map[string]Provider

	ref1             string
	ref2             string
	primaryHoliday   string
	secondaryHoliday string
}

// RegistryConfig selects the definitions and the designated exchanges.
// Nil Definitions means the builtin defaults.
type RegistryConfig struct {
	Definitions      []Definition
	Ref1             string
	Ref2             string
	PrimaryHoliday   string
	SecondaryHoliday string
}

// NewRegistry builds providers for every definition and validates that the
// designated reference and holiday exchanges exist.
func NewRegistry(cfg RegistryConfig) (*Registry, error) {
	defs := cfg.Definitions
	if defs == nil {
		defs = Defaults()
	}

	providers := make([]Provider, 0, len(defs))
	for _, def := range defs {
		provider, err := NewExchange(def)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	return NewRegistryFromProviders(providers, cfg)
}

// NewRegistryFromProviders wires prebuilt providers instead of compiling
// definitions, for calendar sources other than the builtin Exchange. The
// provider order becomes the registry order.
func NewRegistryFromProviders(providers []Provider, cfg RegistryConfig) (*Registry, error) {
	r := &Registry{
		providers:        make(map[string]Provider, len(providers)),
		ref1:             cfg.Ref1,
		ref2:             cfg.Ref2,
		primaryHoliday:   cfg.PrimaryHoliday,
		secondaryHoliday: cfg.SecondaryHoliday,
	}

	for _, provider := range providers {
		code := provider.Code()
		if _, dup := r.providers[code]; dup {
			return nil, errors.Tracef(errors.InvalidArgument, "duplicate exchange code %q", code)
		}
		r.codes = append(r.codes, code)
		r.providers[code] = provider
	}

	for _, code := range []string{r.ref1, r.ref2, r.primaryHoliday, r.secondaryHoliday} {
		if _, ok := r.providers[code]; !ok {
			return nil, errors.Tracef(errors.UnknownExchange, "no calendar for exchange %q", code)
		}
	}

	return r, nil
}

// Codes returns the exchange codes in registry order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// Provider returns the calendar provider for code.
func (r *Registry) Provider(code string) (Provider, error) {
	provider, ok := r.providers[code]
	if !ok {
		return nil, errors.Tracef(errors.UnknownExchange, "no calendar for exchange %q", code)
	}
	return provider, nil
}

// Ref1 returns the code of the first reference exchange (hour and session
// label columns).
func (r *Registry) Ref1() string {
	return r.ref1
}

// Ref2 returns the code of the second reference exchange.
func (r *Registry) Ref2() string {
	return r.ref2
}

// PrimaryHoliday returns the code of the exchange backing the primary
// holiday flag.
func (r *Registry) PrimaryHoliday() string {
	return r.primaryHoliday
}

// SecondaryHoliday returns the code of the exchange backing the secondary
// holiday flag.
func (r *Registry) SecondaryHoliday() string {
	return r.secondaryHoliday
}
