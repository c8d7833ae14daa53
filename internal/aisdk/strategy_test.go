// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package aisdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

func TestToolCallEquivalenceAcrossVersions(t *testing.T) {
	// Logically identical tool calls: v4 spells the payload args/result,
	// v5 spells it input/output with an enveloped result.
	v4Attrs := model.Attributes{
		"ai.result.toolCalls": `[{"toolCallId":"call_1","toolName":"get_weather","args":{"city":"Lisbon"},"result":{"temp":21}}]`,
	}
	v5Attrs := model.Attributes{
		"ai.response.toolCalls": `[{"toolCallId":"call_1","toolName":"get_weather","input":{"city":"Lisbon"},"output":{"type":"json","value":{"temp":21}}}]`,
	}

	v4Calls, ok := v4Strategy{}.ToolCalls(v4Attrs)
	require.True(t, ok)
	v5Calls, ok := v5Strategy{}.ToolCalls(v5Attrs)
	require.True(t, ok)

	assert.Equal(t, v4Calls, v5Calls)
	require.Len(t, v4Calls, 1)
	assert.Equal(t, "tool-call", v4Calls[0].Type)
	assert.Equal(t, "call_1", v4Calls[0].ToolCallID)
	assert.Equal(t, "get_weather", v4Calls[0].ToolName)
	assert.Equal(t, map[string]any{"city": "Lisbon"}, v4Calls[0].Args)
	assert.Equal(t, map[string]any{"temp": float64(21)}, v4Calls[0].Result)
}

func TestToolCallsShapeErrorsDegrade(t *testing.T) {
	for name, attrs := range map[string]model.Attributes{
		"not json":     {"ai.result.toolCalls": "oops"},
		"not an array": {"ai.result.toolCalls": `{"toolName":"x"}`},
		"absent":       {},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := v4Strategy{}.ToolCalls(attrs)
			assert.False(t, ok)
		})
	}
}

func TestToolCallArgsAsEmbeddedJSONString(t *testing.T) {
	calls, ok := v4Strategy{}.ToolCalls(model.Attributes{
		"ai.result.toolCalls": `[{"toolCallId":"c","toolName":"sum","args":"{\"a\":1}"}]`,
	})
	require.True(t, ok)
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{"a": float64(1)}, calls[0].Args)
	assert.Nil(t, calls[0].Result)
}

func TestInputMessages(t *testing.T) {
	messages, ok := v5Strategy{}.InputMessages(model.Attributes{
		"ai.prompt.messages": `[{"role":"system","content":"be brief"},{"role":"user","content":"hi"}]`,
	})
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "hi", messages[1].Content)

	_, ok = v5Strategy{}.InputMessages(model.Attributes{"ai.prompt.messages": "not json"})
	assert.False(t, ok)

	_, ok = v5Strategy{}.InputMessages(model.Attributes{"ai.prompt.messages": `{"role":"user"}`})
	assert.False(t, ok)
}

func TestFinishReason(t *testing.T) {
	reason, ok := v5Strategy{}.FinishReason(model.Attributes{"ai.response.finishReason": "stop"})
	require.True(t, ok)
	assert.Equal(t, "stop", reason)

	// Shared fallback key, array value takes index 0.
	reason, ok = v4Strategy{}.FinishReason(model.Attributes{
		"gen_ai.response.finish_reasons": []any{"length", "stop"},
	})
	require.True(t, ok)
	assert.Equal(t, "length", reason)

	_, ok = v4Strategy{}.FinishReason(model.Attributes{})
	assert.False(t, ok)
}

func TestSettings(t *testing.T) {
	// OTel key beats the SDK key per field; SDK key fills the gaps.
	settings, ok := v5Strategy{}.Settings(model.Attributes{
		"gen_ai.request.temperature":  0.1,
		"ai.settings.temperature":     0.9,
		"ai.settings.maxOutputTokens": float64(1024),
	})
	require.True(t, ok)
	assert.Equal(t, 0.1, settings["temperature"])
	assert.Equal(t, float64(1024), settings["maxTokens"])

	// No field at all means no settings object, not an empty one.
	_, ok = v5Strategy{}.Settings(model.Attributes{"unrelated": 1})
	assert.False(t, ok)
}

func TestUsage(t *testing.T) {
	counts := v4Strategy{}.Usage(model.Attributes{
		"ai.usage.promptTokens":     float64(150),
		"ai.usage.completionTokens": float64(75),
	})
	require.NotNil(t, counts.Total)
	assert.Equal(t, float64(225), *counts.Total)

	counts = v5Strategy{}.Usage(model.Attributes{
		"ai.usage.inputTokens":  float64(5),
		"ai.usage.outputTokens": float64(7),
	})
	require.NotNil(t, counts.Total)
	assert.Equal(t, float64(12), *counts.Total)
}

func TestReasoningTokens(t *testing.T) {
	// v5 dedicated usage key.
	n, ok := v5Strategy{}.ReasoningTokens(model.Attributes{"ai.usage.reasoningTokens": float64(64)})
	require.True(t, ok)
	assert.Equal(t, float64(64), n)

	// Present but unreadable coerces to 0, never absent.
	n, ok = v5Strategy{}.ReasoningTokens(model.Attributes{"ai.usage.reasoningTokens": "lots"})
	require.True(t, ok)
	assert.Zero(t, n)

	// v4 only knows the provider metadata channel.
	n, ok = v4Strategy{}.ReasoningTokens(model.Attributes{
		"ai.response.providerMetadata": `{"openai":{"reasoningTokens":128}}`,
	})
	require.True(t, ok)
	assert.Equal(t, float64(128), n)

	n, ok = v4Strategy{}.ReasoningTokens(model.Attributes{
		"ai.response.providerMetadata": "garbage",
	})
	require.True(t, ok)
	assert.Zero(t, n)

	// No source at all stays absent.
	_, ok = v4Strategy{}.ReasoningTokens(model.Attributes{})
	assert.False(t, ok)
}

func TestOutputObject(t *testing.T) {
	object, ok := v5Strategy{}.OutputObject(model.Attributes{
		"ai.response.object": `{"answer":42}`,
	})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"answer": float64(42)}, object)

	_, ok = v5Strategy{}.OutputObject(model.Attributes{"ai.response.object": "{broken"})
	assert.False(t, ok)
}
