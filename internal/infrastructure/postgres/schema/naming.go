package schema

import (
	"fmt"
	"strings"
)

// SanitizeInstrument converts an instrument symbol into a table-name
// prefix: lowercase, with anything outside [a-z0-9_] dropped.
func SanitizeInstrument(instrument string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(instrument) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TickTable returns the tick-table name for an instrument and feed
// variant ("execution" or "reference").
func TickTable(instrument, variant string) string {
	return fmt.Sprintf("%s_%s_ticks", SanitizeInstrument(instrument), variant)
}

// BarsTable returns the one-minute bar table name for an instrument.
func BarsTable(instrument string) string {
	return fmt.Sprintf("%s_bars", SanitizeInstrument(instrument))
}

// RunsTable returns the update-run history table name for an instrument.
func RunsTable(instrument string) string {
	return fmt.Sprintf("%s_update_runs", SanitizeInstrument(instrument))
}

// SessionColumn returns the per-exchange session flag column name.
func SessionColumn(code string) string {
	return fmt.Sprintf("is_%s_session", SanitizeInstrument(code))
}
