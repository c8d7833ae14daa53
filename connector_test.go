// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package genainormalizerconnector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/connector/connectortest"
	"go.opentelemetry.io/collector/consumer/consumertest"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"

	"github.com/agentmark-ai/genainormalizerconnector/internal/metadata"
)

var (
	testTraceID = pcommon.TraceID([16]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef})
	testSpanID  = pcommon.SpanID([8]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef})
)

func testTraces() ptrace.Traces {
	td := ptrace.NewTraces()
	rs := td.ResourceSpans().AppendEmpty()
	rs.Resource().Attributes().PutStr("service.name", "assistant")

	ss := rs.ScopeSpans().AppendEmpty()
	ss.Scope().SetName("ai")
	span := ss.Spans().AppendEmpty()
	span.SetTraceID(testTraceID)
	span.SetSpanID(testSpanID)
	span.SetName("ai.generateText.doGenerate")
	span.SetStartTimestamp(pcommon.Timestamp(1_000_000_000))
	span.SetEndTimestamp(pcommon.Timestamp(2_000_000_000))
	span.Attributes().PutStr("ai.model.id", "claude-sonnet-4")
	span.Attributes().PutStr("ai.response.text", "hello")
	span.Attributes().PutInt("ai.usage.inputTokens", 12)
	span.Attributes().PutInt("ai.usage.outputTokens", 3)
	return td
}

func newTestConnector(t *testing.T, cfg *Config, sink *consumertest.LogsSink) *normalize {
	t.Helper()
	conn, err := NewFactory().CreateTracesToLogs(
		context.Background(), connectortest.NewNopSettings(metadata.Type), cfg, sink)
	require.NoError(t, err)
	return conn.(*normalize)
}

func TestConsumeTraces(t *testing.T) {
	sink := new(consumertest.LogsSink)
	conn := newTestConnector(t, createDefaultConfig().(*Config), sink)

	require.NoError(t, conn.ConsumeTraces(context.Background(), testTraces()))

	allLogs := sink.AllLogs()
	require.Len(t, allLogs, 1)
	scopeLogs := allLogs[0].ResourceLogs().At(0).ScopeLogs().At(0)
	assert.Equal(t, metadata.ScopeName, scopeLogs.Scope().Name())
	require.Equal(t, 1, scopeLogs.LogRecords().Len())

	logRecord := scopeLogs.LogRecords().At(0)
	assert.Equal(t, testTraceID, logRecord.TraceID())
	assert.Equal(t, testSpanID, logRecord.SpanID())
	assert.Equal(t, pcommon.Timestamp(2_000_000_000), logRecord.Timestamp())

	spanType, ok := logRecord.Attributes().Get("genai.span.type")
	require.True(t, ok)
	assert.Equal(t, "GENERATION", spanType.Str())

	body := logRecord.Body().Map().AsRaw()
	assert.Equal(t, "GENERATION", body["type"])
	assert.Equal(t, "ai.generateText.doGenerate", body["name"])
	assert.Equal(t, "claude-sonnet-4", body["model"])
	assert.Equal(t, "hello", body["output"])
	assert.Equal(t, "assistant", body["serviceName"])
	assert.Equal(t, float64(12), body["inputTokens"])
	assert.Equal(t, float64(15), body["totalTokens"])
	assert.Equal(t, float64(1000), body["startTime"])
	assert.Equal(t, float64(2000), body["endTime"])
	assert.Equal(t, float64(1000), body["duration"])
	assert.Contains(t, body, "attributes")
	assert.Contains(t, body, "resourceAttributes")
}

func TestConsumeTracesStripsRawSections(t *testing.T) {
	sink := new(consumertest.LogsSink)
	cfg := &Config{IncludeResourceAttributes: false, IncludeRaw: false, ErrorMode: ErrorModeIgnore}
	conn := newTestConnector(t, cfg, sink)

	require.NoError(t, conn.ConsumeTraces(context.Background(), testTraces()))

	body := sink.AllLogs()[0].ResourceLogs().At(0).ScopeLogs().At(0).LogRecords().At(0).Body().Map().AsRaw()
	assert.NotContains(t, body, "attributes")
	assert.NotContains(t, body, "resourceAttributes")
	assert.NotContains(t, body, "events")
	// Normalized fields survive the stripping.
	assert.Equal(t, "claude-sonnet-4", body["model"])
}

func TestConsumeTracesEmpty(t *testing.T) {
	sink := new(consumertest.LogsSink)
	conn := newTestConnector(t, createDefaultConfig().(*Config), sink)

	require.NoError(t, conn.ConsumeTraces(context.Background(), ptrace.NewTraces()))
	assert.Empty(t, sink.AllLogs())
}
