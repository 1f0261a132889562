package calendar

// Defaults returns the builtin exchange set. The order is load-bearing: it
// fixes the session-flag column order in the bar schema and the annotation
// loop. Holiday lists cover the exchanges backing the holiday flags in
// depth (newyork, tokyo) and the remaining venues with their fixed-date
// closures.
func Defaults() []Definition {
	return []Definition{
		{
			Code:     "sydney",
			Name:     "Australian Securities Exchange",
			Timezone: "Australia/Sydney",
			Schedules: []Schedule{
				{Sessions: []Session{{Open: "10:00", Close: "16:00"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-01-26", "2024-03-29", "2024-04-01", "2024-04-25",
				"2024-06-10", "2024-12-25", "2024-12-26",
				"2025-01-01", "2025-01-27", "2025-04-18", "2025-04-21", "2025-04-25",
				"2025-06-09", "2025-12-25", "2025-12-26",
			},
		},
		{
			Code:     "tokyo",
			Name:     "Tokyo Stock Exchange",
			Timezone: "Asia/Tokyo",
			Schedules: []Schedule{
				// Afternoon close moved from 15:00 to 15:30 on 2024-11-05.
				{Sessions: []Session{{Open: "09:00", Close: "11:30"}, {Open: "12:30", Close: "15:00"}}},
				{EffectiveFrom: "2024-11-05", Sessions: []Session{{Open: "09:00", Close: "11:30"}, {Open: "12:30", Close: "15:30"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-08", "2024-02-12",
				"2024-02-23", "2024-03-20", "2024-04-29", "2024-05-03", "2024-05-06",
				"2024-07-15", "2024-08-12", "2024-09-16", "2024-09-23", "2024-10-14",
				"2024-11-04", "2024-12-31",
				"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-13", "2025-02-11",
				"2025-02-24", "2025-03-20", "2025-04-29", "2025-05-05", "2025-05-06",
				"2025-07-21", "2025-08-11", "2025-09-15", "2025-09-23", "2025-10-13",
				"2025-11-03", "2025-11-24", "2025-12-31",
			},
		},
		{
			Code:     "hongkong",
			Name:     "Hong Kong Exchanges and Clearing",
			Timezone: "Asia/Hong_Kong",
			Schedules: []Schedule{
				{Sessions: []Session{{Open: "09:30", Close: "12:00"}, {Open: "13:00", Close: "16:00"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-02-12", "2024-02-13", "2024-03-29", "2024-04-01",
				"2024-04-04", "2024-05-01", "2024-05-15", "2024-06-10", "2024-07-01",
				"2024-09-18", "2024-10-01", "2024-10-11", "2024-12-25", "2024-12-26",
				"2025-01-01", "2025-01-29", "2025-01-30", "2025-01-31", "2025-04-04",
				"2025-04-18", "2025-04-21", "2025-05-01", "2025-05-05", "2025-07-01",
				"2025-10-01", "2025-10-07", "2025-10-29", "2025-12-25", "2025-12-26",
			},
		},
		{
			Code:     "singapore",
			Name:     "Singapore Exchange",
			Timezone: "Asia/Singapore",
			Schedules: []Schedule{
				{Sessions: []Session{{Open: "09:00", Close: "12:00"}, {Open: "13:00", Close: "17:00"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-02-12", "2024-03-29", "2024-04-10", "2024-05-01",
				"2024-05-22", "2024-06-17", "2024-08-09", "2024-10-31", "2024-12-25",
				"2025-01-01", "2025-01-29", "2025-01-30", "2025-03-31", "2025-04-18",
				"2025-05-01", "2025-05-12", "2025-06-09", "2025-08-09", "2025-10-20",
				"2025-12-25",
			},
		},
		{
			Code:     "frankfurt",
			Name:     "Deutsche Boerse Xetra",
			Timezone: "Europe/Berlin",
			Schedules: []Schedule{
				{Sessions: []Session{{Open: "09:00", Close: "17:30"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-03-29", "2024-04-01", "2024-05-01", "2024-12-24",
				"2024-12-25", "2024-12-26", "2024-12-31",
				"2025-01-01", "2025-04-18", "2025-04-21", "2025-05-01", "2025-12-24",
				"2025-12-25", "2025-12-26", "2025-12-31",
			},
		},
		{
			Code:     "zurich",
			Name:     "SIX Swiss Exchange",
			Timezone: "Europe/Zurich",
			Schedules: []Schedule{
				{Sessions: []Session{{Open: "09:00", Close: "17:30"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-01-02", "2024-03-29", "2024-04-01", "2024-05-01",
				"2024-05-09", "2024-05-20", "2024-08-01", "2024-12-24", "2024-12-25",
				"2024-12-26", "2024-12-31",
				"2025-01-01", "2025-01-02", "2025-04-18", "2025-04-21", "2025-05-01",
				"2025-05-29", "2025-06-09", "2025-08-01", "2025-12-24", "2025-12-25",
				"2025-12-26", "2025-12-31",
			},
		},
		{
			Code:     "london",
			Name:     "London Stock Exchange",
			Timezone: "Europe/London",
			Schedules: []Schedule{
				{Sessions: []Session{{Open: "08:00", Close: "16:30"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-03-29", "2024-04-01", "2024-05-06", "2024-05-27",
				"2024-08-26", "2024-12-25", "2024-12-26",
				"2025-01-01", "2025-04-18", "2025-04-21", "2025-05-05", "2025-05-26",
				"2025-08-25", "2025-12-25", "2025-12-26",
			},
		},
		{
			Code:     "newyork",
			Name:     "New York Stock Exchange",
			Timezone: "America/New_York",
			Schedules: []Schedule{
				{Sessions: []Session{{Open: "09:30", Close: "16:00"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-01-15", "2024-02-19", "2024-03-29", "2024-05-27",
				"2024-06-19", "2024-07-04", "2024-09-02", "2024-11-28", "2024-12-25",
				"2025-01-01", "2025-01-09", "2025-01-20", "2025-02-17", "2025-04-18",
				"2025-05-26", "2025-06-19", "2025-07-04", "2025-09-01", "2025-11-27",
				"2025-12-25",
			},
		},
		{
			Code:     "toronto",
			Name:     "Toronto Stock Exchange",
			Timezone: "America/Toronto",
			Schedules: []Schedule{
				{Sessions: []Session{{Open: "09:30", Close: "16:00"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-02-19", "2024-03-29", "2024-05-20", "2024-07-01",
				"2024-08-05", "2024-09-02", "2024-10-14", "2024-12-25", "2024-12-26",
				"2025-01-01", "2025-02-17", "2025-04-18", "2025-05-19", "2025-07-01",
				"2025-08-04", "2025-09-01", "2025-10-13", "2025-12-25", "2025-12-26",
			},
		},
		{
			Code:     "chicago",
			Name:     "CME Group Regular Trading Hours",
			Timezone: "America/Chicago",
			Schedules: []Schedule{
				{Sessions: []Session{{Open: "08:30", Close: "15:15"}}},
			},
			Holidays: []string{
				"2024-01-01", "2024-01-15", "2024-02-19", "2024-03-29", "2024-05-27",
				"2024-06-19", "2024-07-04", "2024-09-02", "2024-11-28", "2024-12-25",
				"2025-01-01", "2025-01-20", "2025-02-17", "2025-04-18", "2025-05-26",
				"2025-06-19", "2025-07-04", "2025-09-01", "2025-11-27", "2025-12-25",
			},
		},
	}
}

// DefaultRegistryConfig designates tokyo/newyork as the reference pair and
// newyork/tokyo as the primary/secondary holiday exchanges.
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		Ref1:             "tokyo",
		Ref2:             "newyork",
		PrimaryHoliday:   "newyork",
		SecondaryHoliday: "tokyo",
	}
}
