package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracerFromError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		assertFn func(t *testing.T, tracer *ErrorTracer)
	}{
		{
			name: "plain error gains a stack trace",
			err:  stderrors.New("boom"),
			assertFn: func(t *testing.T, tracer *ErrorTracer) {
				assert.Equal(t, "boom", tracer.Error())
				assert.Equal(t, Internal, tracer.Code)
				assert.NotNil(t, tracer.StackTrace())
			},
		},
		{
			name: "existing tracer is returned unchanged",
			err:  NewTracer(MalformedRecord, "bad row"),
			assertFn: func(t *testing.T, tracer *ErrorTracer) {
				assert.Equal(t, MalformedRecord, tracer.Code)
				assert.Equal(t, "bad row", tracer.Message)
			},
		},
		{
			name: "wrapped tracer keeps its code",
			err:  fmt.Errorf("failed to ingest: %w", NewTracer(ResourceUnavailable, "fetch failed")),
			assertFn: func(t *testing.T, tracer *ErrorTracer) {
				assert.Equal(t, ResourceUnavailable, tracer.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.assertFn(t, TracerFromError(tc.err))
		})
	}
}

func TestGetCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unclassified", err: stderrors.New("boom"), want: Internal},
		{name: "direct", err: NewTracer(UnknownExchange, "no calendar for osaka"), want: UnknownExchange},
		{name: "wrapped", err: fmt.Errorf("annotate: %w", NewTracer(CalendarLookupFailure, "provider down")), want: CalendarLookupFailure},
		{name: "with code", err: WithCode(StoreFailure, stderrors.New("connection reset")), want: StoreFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetCode(tc.err))
			assert.True(t, IsCode(tc.err, tc.want))
		})
	}
}

func TestTracef(t *testing.T) {
	err := Tracef(MalformedRecord, "row %d: bad bid %q", 17, "x")
	assert.Equal(t, "row 17: bad bid \"x\"", err.Error())
	assert.Equal(t, MalformedRecord, GetCode(err))
}
