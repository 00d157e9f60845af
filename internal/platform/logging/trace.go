package logging

import (
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-f]{2})-([0-9a-f]{32})-([0-9a-f]{16})-([0-9a-f]{2})$`)

type traceContext struct {
	TraceID string
	SpanID  string
	Sampled bool
}

// parseTraceparent returns false for malformed headers and for the all-zero IDs
// W3C Trace Context marks invalid.
func parseTraceparent(header string) (traceContext, bool) {
	m := traceparentRe.FindStringSubmatch(header)
	if m == nil || m[1] == "ff" {
		return traceContext{}, false
	}
	if m[2] == "00000000000000000000000000000000" || m[3] == "0000000000000000" {
		return traceContext{}, false
	}
	flags, err := strconv.ParseUint(m[4], 16, 8)
	if err != nil {
		return traceContext{}, false
	}
	return traceContext{
		TraceID: m[2],
		SpanID:  m[3],
		Sampled: flags&0x01 == 1,
	}, true
}

func traceResource(projectID, traceID string) string {
	return "projects/" + projectID + "/traces/" + traceID
}

// traceFields returns the Cloud Logging correlation fields, or nil when the
// project is unknown or the header is unusable.
func traceFields(header, projectID string) []zap.Field {
	if projectID == "" {
		return nil
	}
	tc, ok := parseTraceparent(header)
	if !ok {
		return nil
	}
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", traceResource(projectID, tc.TraceID)),
		zap.String("logging.googleapis.com/spanId", tc.SpanID),
		zap.Bool("logging.googleapis.com/trace_sampled", tc.Sampled),
	}
}
