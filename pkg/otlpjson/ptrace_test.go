// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package otlpjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
)

func TestFromTraces(t *testing.T) {
	td := ptrace.NewTraces()
	resourceSpans := td.ResourceSpans().AppendEmpty()
	resourceSpans.Resource().Attributes().PutStr("service.name", "agent-api")
	resourceSpans.Resource().Attributes().PutStr("__proto__", "polluted")

	scopeSpans := resourceSpans.ScopeSpans().AppendEmpty()
	scopeSpans.Scope().SetName("ai")
	scopeSpans.Scope().SetVersion("4.3.1")

	span := scopeSpans.Spans().AppendEmpty()
	span.SetTraceID(pcommon.TraceID([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}))
	span.SetSpanID(pcommon.SpanID([8]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	span.SetName("ai.generateText.doGenerate")
	span.SetKind(ptrace.SpanKindClient)
	span.SetStartTimestamp(pcommon.Timestamp(1_000_000_000))
	span.SetEndTimestamp(pcommon.Timestamp(2_000_000_000))
	span.Attributes().PutStr("ai.model.id", "gpt-4o")
	span.Attributes().PutInt("ai.usage.promptTokens", 12)
	span.Attributes().PutDouble("temperature", 0.2)
	span.Attributes().PutBool("stream", false)
	slice := span.Attributes().PutEmptySlice("tags")
	slice.AppendEmpty().SetStr("prod")
	slice.AppendEmpty().SetInt(3)
	span.Status().SetCode(ptrace.StatusCodeError)
	span.Status().SetMessage("upstream timeout")

	event := span.Events().AppendEmpty()
	event.SetName("retry")
	event.SetTimestamp(pcommon.Timestamp(1_500_000_500_000))

	tuples := FromTraces(td)
	require.Len(t, tuples, 1)
	tuple := tuples[0]

	assert.Equal(t, "agent-api", tuple.Resource.Attributes["service.name"])
	assert.NotContains(t, tuple.Resource.Attributes, "__proto__")
	assert.Equal(t, "ai", tuple.Scope.Name)

	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", tuple.Span.TraceID)
	assert.Equal(t, "0102030405060708", tuple.Span.SpanID)
	assert.Empty(t, tuple.Span.ParentSpanID)
	assert.Equal(t, "1000000000", tuple.Span.StartTimeUnixNano)
	assert.Equal(t, "2000000000", tuple.Span.EndTimeUnixNano)

	// Numbers come out as float64 exactly like the JSON path.
	assert.Equal(t, float64(12), tuple.Span.Attributes["ai.usage.promptTokens"])
	assert.Equal(t, 0.2, tuple.Span.Attributes["temperature"])
	assert.Equal(t, false, tuple.Span.Attributes["stream"])
	assert.Equal(t, []any{"prod", float64(3)}, tuple.Span.Attributes["tags"])

	require.NotNil(t, tuple.Span.Status)
	assert.Equal(t, int64(ptrace.StatusCodeError), tuple.Span.Status.Code)

	require.Len(t, tuple.Span.Events, 1)
	assert.Equal(t, 1500000.5, tuple.Span.Events[0].Timestamp)
}
