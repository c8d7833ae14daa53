// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package otlpjson // import "github.com/agentmark-ai/genainormalizerconnector/pkg/otlpjson"

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// TracesPayload is the top level of an OTLP/JSON trace export request.
type TracesPayload struct {
	ResourceSpans []ResourceSpans `json:"resourceSpans"`
}

// ResourceSpans mirrors the OTLP wire grouping of spans under one resource.
type ResourceSpans struct {
	Resource struct {
		Attributes []KeyValue `json:"attributes"`
	} `json:"resource"`
	ScopeSpans []ScopeSpans `json:"scopeSpans"`
}

// ScopeSpans groups spans under one instrumentation scope.
type ScopeSpans struct {
	Scope model.Scope `json:"scope"`
	Spans []Span      `json:"spans"`
}

// Span is the wire form of one span before attribute decoding.
type Span struct {
	TraceID           string               `json:"traceId"`
	SpanID            string               `json:"spanId"`
	ParentSpanID      string               `json:"parentSpanId"`
	TraceState        string               `json:"traceState"`
	Name              string               `json:"name"`
	Kind              int64                `json:"kind"`
	StartTimeUnixNano *jsoniter.RawMessage `json:"startTimeUnixNano"`
	EndTimeUnixNano   *jsoniter.RawMessage `json:"endTimeUnixNano"`
	Attributes        []KeyValue           `json:"attributes"`
	Events            []Event              `json:"events"`
	Links             []Link               `json:"links"`
	Status            *model.Status        `json:"status"`
}

// Event is the wire form of one span event.
type Event struct {
	TimeUnixNano *jsoniter.RawMessage `json:"timeUnixNano"`
	Name         string               `json:"name"`
	Attributes   []KeyValue           `json:"attributes"`
}

// Link is the wire form of one span link.
type Link struct {
	TraceID    string     `json:"traceId"`
	SpanID     string     `json:"spanId"`
	TraceState string     `json:"traceState"`
	Attributes []KeyValue `json:"attributes"`
}

// Unroll flattens resource-span groups into the cartesian product of their
// scope-spans and spans, every tuple inheriting the single parent resource.
// Event timestamps become numbers here and an unparseable one is a fatal
// decode error: downstream time math has no sane default to fall back to.
func Unroll(groups []ResourceSpans) ([]model.Tuple, error) {
	var tuples []model.Tuple
	for _, group := range groups {
		resource := model.Resource{Attributes: DecodeAttributes(group.Resource.Attributes)}
		for _, scopeSpans := range group.ScopeSpans {
			for _, wire := range scopeSpans.Spans {
				span, err := convertSpan(wire)
				if err != nil {
					return nil, err
				}
				tuples = append(tuples, model.Tuple{
					Resource: resource,
					Scope:    scopeSpans.Scope,
					Span:     span,
				})
			}
		}
	}
	return tuples, nil
}

// UnmarshalTuples decodes a full OTLP/JSON payload and unrolls it.
func UnmarshalTuples(data []byte) ([]model.Tuple, error) {
	var payload TracesPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decoding OTLP payload: %w", err)
	}
	return Unroll(payload.ResourceSpans)
}

func convertSpan(wire Span) (model.Span, error) {
	span := model.Span{
		TraceID:           wire.TraceID,
		SpanID:            wire.SpanID,
		ParentSpanID:      wire.ParentSpanID,
		TraceState:        wire.TraceState,
		Name:              wire.Name,
		Kind:              wire.Kind,
		StartTimeUnixNano: rawNanos(wire.StartTimeUnixNano),
		EndTimeUnixNano:   rawNanos(wire.EndTimeUnixNano),
		Attributes:        DecodeAttributes(wire.Attributes),
		Status:            wire.Status,
	}
	for _, wireEvent := range wire.Events {
		timestamp, err := NanosToMillis(rawNanos(wireEvent.TimeUnixNano))
		if err != nil {
			return model.Span{}, fmt.Errorf("span %q event %q: %w", wire.SpanID, wireEvent.Name, err)
		}
		span.Events = append(span.Events, model.Event{
			Timestamp:  timestamp,
			Name:       wireEvent.Name,
			Attributes: DecodeAttributes(wireEvent.Attributes),
		})
	}
	for _, wireLink := range wire.Links {
		span.Links = append(span.Links, model.Link{
			TraceID:    wireLink.TraceID,
			SpanID:     wireLink.SpanID,
			TraceState: wireLink.TraceState,
			Attributes: DecodeAttributes(wireLink.Attributes),
		})
	}
	return span, nil
}

// rawNanos keeps the wire timestamp as its decimal string, whether the
// producer quoted it or not. Validation happens where the value is used.
func rawNanos(raw *jsoniter.RawMessage) string {
	if raw == nil {
		return ""
	}
	return unquote(*raw)
}
