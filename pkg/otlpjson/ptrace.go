// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package otlpjson // import "github.com/agentmark-ai/genainormalizerconnector/pkg/otlpjson"

import (
	"encoding/base64"
	"strconv"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"

	"github.com/agentmark-ai/genainormalizerconnector/internal/sanitize"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// FromTraces flattens in-memory pdata traces into normalizer tuples. This
// is the input path used when the normalizer runs inside a collector
// pipeline; the JSON path in this package covers raw exports. Both apply
// the same key sanitization and produce the same shapes.
func FromTraces(td ptrace.Traces) []model.Tuple {
	var tuples []model.Tuple
	resourceSpans := td.ResourceSpans()
	for i := 0; i < resourceSpans.Len(); i++ {
		resourceSpan := resourceSpans.At(i)
		resource := model.Resource{Attributes: fromMap(resourceSpan.Resource().Attributes())}
		scopeSpans := resourceSpan.ScopeSpans()
		for j := 0; j < scopeSpans.Len(); j++ {
			scopeSpan := scopeSpans.At(j)
			scope := model.Scope{
				Name:    scopeSpan.Scope().Name(),
				Version: scopeSpan.Scope().Version(),
			}
			spans := scopeSpan.Spans()
			for k := 0; k < spans.Len(); k++ {
				tuples = append(tuples, model.Tuple{
					Resource: resource,
					Scope:    scope,
					Span:     fromSpan(spans.At(k)),
				})
			}
		}
	}
	return tuples
}

func fromSpan(span ptrace.Span) model.Span {
	out := model.Span{
		TraceID:           span.TraceID().String(),
		SpanID:            span.SpanID().String(),
		TraceState:        span.TraceState().AsRaw(),
		Name:              span.Name(),
		Kind:              int64(span.Kind()),
		StartTimeUnixNano: strconv.FormatUint(uint64(span.StartTimestamp()), 10),
		EndTimeUnixNano:   strconv.FormatUint(uint64(span.EndTimestamp()), 10),
		Attributes:        fromMap(span.Attributes()),
	}
	if !span.ParentSpanID().IsEmpty() {
		out.ParentSpanID = span.ParentSpanID().String()
	}
	if span.Status().Code() != ptrace.StatusCodeUnset || span.Status().Message() != "" {
		out.Status = &model.Status{
			Code:    int64(span.Status().Code()),
			Message: span.Status().Message(),
		}
	}
	events := span.Events()
	for i := 0; i < events.Len(); i++ {
		event := events.At(i)
		nanos := uint64(event.Timestamp())
		out.Events = append(out.Events, model.Event{
			Timestamp:  float64(nanos/1e6) + float64(nanos%1e6)/1e6,
			Name:       event.Name(),
			Attributes: fromMap(event.Attributes()),
		})
	}
	links := span.Links()
	for i := 0; i < links.Len(); i++ {
		link := links.At(i)
		out.Links = append(out.Links, model.Link{
			TraceID:    link.TraceID().String(),
			SpanID:     link.SpanID().String(),
			TraceState: link.TraceState().AsRaw(),
			Attributes: fromMap(link.Attributes()),
		})
	}
	return out
}

func fromMap(attrs pcommon.Map) model.Attributes {
	out := make(model.Attributes, attrs.Len())
	attrs.Range(func(key string, value pcommon.Value) bool {
		if !sanitize.SafeKey(key) {
			return true
		}
		out[key] = fromValue(value)
		return true
	})
	return out
}

// fromValue mirrors DecodeValue's conventions: numbers are float64, bytes
// stay base64 text.
func fromValue(value pcommon.Value) any {
	switch value.Type() {
	case pcommon.ValueTypeStr:
		return value.Str()
	case pcommon.ValueTypeInt:
		return float64(value.Int())
	case pcommon.ValueTypeDouble:
		return value.Double()
	case pcommon.ValueTypeBool:
		return value.Bool()
	case pcommon.ValueTypeSlice:
		slice := value.Slice()
		out := make([]any, 0, slice.Len())
		for i := 0; i < slice.Len(); i++ {
			out = append(out, fromValue(slice.At(i)))
		}
		return out
	case pcommon.ValueTypeBytes:
		return base64.StdEncoding.EncodeToString(value.Bytes().AsRaw())
	case pcommon.ValueTypeMap:
		return value.Map().AsRaw()
	}
	return nil
}
