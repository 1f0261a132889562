package errors

// ErrorCode classifies a failure so callers can branch on the kind of
// fault without string-matching messages.
type ErrorCode string

const (
	// ResourceUnavailable indicates a monthly archive could not be fetched.
	ResourceUnavailable ErrorCode = "resource_unavailable"
	// MalformedRecord indicates a tick row that cannot be parsed, carries a
	// bad price, or lacks a UTC timestamp.
	MalformedRecord ErrorCode = "malformed_record"
	// UnknownExchange indicates the calendar registry has no entry for a code.
	UnknownExchange ErrorCode = "unknown_exchange"
	// CalendarLookupFailure indicates an underlying calendar provider error.
	CalendarLookupFailure ErrorCode = "calendar_lookup_failure"

	// InvalidArgument indicates a caller-supplied value failed validation.
	InvalidArgument ErrorCode = "invalid_argument"
	// StoreFailure indicates a repository or store-level fault.
	StoreFailure ErrorCode = "store_failure"
	// Internal is the fallback code for unclassified failures.
	Internal ErrorCode = "internal"
)
