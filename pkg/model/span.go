// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

// Package model holds the wire-level span representation produced by the
// OTLP converter and the canonical normalized record consumed by storage,
// search and the trace viewer.
package model // import "github.com/agentmark-ai/genainormalizerconnector/pkg/model"

// Attributes is a flattened attribute map. Values are the decoded native
// forms of the OTLP tagged union: string, float64, bool, []any or the
// base64 text of a bytes value.
type Attributes map[string]any

// Merge returns a new map containing every entry of base overlaid with
// every entry of over. Keys present in both take the value from over.
func (a Attributes) Merge(over Attributes) Attributes {
	merged := make(Attributes, len(a)+len(over))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}

// Resource is the simplified wire form of an OTLP resource.
type Resource struct {
	Attributes Attributes `json:"attributes"`
}

// Scope identifies the instrumentation library that produced a span.
type Scope struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Status is the simplified wire form of a span status.
type Status struct {
	Code    int64  `json:"code"`
	Message string `json:"message,omitempty"`
}

// Event is a reduced span event. Timestamp is in milliseconds since the
// Unix epoch, already converted from the wire's nanosecond string.
type Event struct {
	Timestamp  float64    `json:"timestamp"`
	Name       string     `json:"name"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// Link is a reduced span link.
type Link struct {
	TraceID    string     `json:"traceId"`
	SpanID     string     `json:"spanId"`
	TraceState string     `json:"traceState,omitempty"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// Span is the simplified wire form of an OTLP span. IDs are opaque,
// unvalidated strings and the timestamps stay as the wire's decimal
// nanosecond strings; bad producer data is preserved, not corrected.
type Span struct {
	TraceID           string     `json:"traceId"`
	SpanID            string     `json:"spanId"`
	ParentSpanID      string     `json:"parentSpanId,omitempty"`
	TraceState        string     `json:"traceState,omitempty"`
	Name              string     `json:"name"`
	Kind              int64      `json:"kind"`
	StartTimeUnixNano string     `json:"startTimeUnixNano"`
	EndTimeUnixNano   string     `json:"endTimeUnixNano"`
	Attributes        Attributes `json:"attributes,omitempty"`
	Events            []Event    `json:"events,omitempty"`
	Links             []Link     `json:"links,omitempty"`
	Status            *Status    `json:"status,omitempty"`
}

// Tuple is one unrolled unit of work for the normalizer: a span together
// with the resource and instrumentation scope it arrived under.
type Tuple struct {
	Resource Resource
	Scope    Scope
	Span     Span
}
