package calendar

// Session is one open interval within a trading day, in exchange-local
// wall-clock time. Close is exclusive: a 15:30 close means the last open
// minute is 15:29.
type Session struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// Schedule is a weekly session pattern valid from EffectiveFrom onward.
// A definition carries one schedule per historical regime; the schedule
// with the latest effective date not after the queried day wins. An empty
// EffectiveFrom means "since inception". Multiple sessions per day model
// intraday closures such as lunch breaks.
type Schedule struct {
	EffectiveFrom string    `yaml:"effective_from,omitempty"`
	Sessions      []Session `yaml:"sessions"`
}

// Definition is the declarative description of one exchange calendar.
// Weekend defaults to Saturday and Sunday when empty. Holiday dates are
// exchange-local calendar dates in YYYY-MM-DD form.
type Definition struct {
	Code      string     `yaml:"code"`
	Name      string     `yaml:"name"`
	Timezone  string     `yaml:"timezone"`
	Weekend   []string   `yaml:"weekend,omitempty"`
	Schedules []Schedule `yaml:"schedules"`
	Holidays  []string   `yaml:"holidays,omitempty"`
}
