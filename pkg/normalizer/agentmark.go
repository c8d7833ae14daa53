// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package normalizer // import "github.com/agentmark-ai/genainormalizerconnector/pkg/normalizer"

import (
	"strings"

	"github.com/agentmark-ai/genainormalizerconnector/internal/extract"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// agentMarkTransformer handles spans from the first-party tracers (scope
// "agentmark"): current producers follow the OTel GenAI span-name forms,
// older ones used fixed gen_ai.* span names, and the oldest are only
// recognizable by their attribute shape.
type agentMarkTransformer struct{}

// NewAgentMarkTransformer returns the transformer for the first-party scope.
func NewAgentMarkTransformer() Transformer { return agentMarkTransformer{} }

// Span names emitted by pre-semconv first-party adapters. All are
// wrapper/grouping spans; their generations are recognized by the
// attribute heuristic instead.
var agentMarkLegacyNames = map[string]struct{}{
	"gen_ai.session":   {},
	"gen_ai.tool.call": {},
	"gen_ai.subagent":  {},
}

// Vendors whose presence in gen_ai.system marks a real model call.
var knownVendors = map[string]struct{}{
	"anthropic":    {},
	"openai":       {},
	"claude":       {},
	"bedrock":      {},
	"gemini":       {},
	"vertex_ai":    {},
	"azure_openai": {},
}

func (agentMarkTransformer) Classify(span model.Span, attrs model.Attributes) model.SpanType {
	operation, _ := extract.String(attrs, "gen_ai.operation.name")
	name := span.Name

	switch {
	case operation == "chat" || name == "chat" || strings.HasPrefix(name, "chat "):
		return model.TypeGeneration
	case operation == "execute_tool" || name == "execute_tool" || strings.HasPrefix(name, "execute_tool "):
		return model.TypeSpan
	case operation == "invoke_agent" || name == "invoke_agent" || strings.HasPrefix(name, "invoke_agent "):
		return model.TypeSpan
	}

	if _, ok := agentMarkLegacyNames[name]; ok {
		return model.TypeSpan
	}

	if system, ok := extract.String(attrs, "gen_ai.system"); ok {
		if _, known := knownVendors[system]; known {
			_, hasTokens := extract.Number(attrs, "gen_ai.usage.input_tokens")
			_, hasOutput := extract.Value(attrs, "gen_ai.response.output")
			if hasTokens && hasOutput {
				return model.TypeGeneration
			}
		}
	}
	return model.TypeSpan
}

var agentMarkTokenKeys = extract.TokenKeys{
	Input:  []string{"gen_ai.usage.input_tokens"},
	Output: []string{"gen_ai.usage.output_tokens"},
	Total:  []string{"gen_ai.usage.total_tokens"},
}

var agentMarkSettingKeys = []struct {
	name string
	key  string
}{
	{"maxTokens", "gen_ai.request.max_tokens"},
	{"temperature", "gen_ai.request.temperature"},
	{"topP", "gen_ai.request.top_p"},
	{"topK", "gen_ai.request.top_k"},
}

func (agentMarkTransformer) Transform(_ model.Span, attrs model.Attributes) *model.Update {
	update := &model.Update{}

	// The model that actually answered beats the one that was asked for.
	if modelID, ok := extract.String(attrs, "gen_ai.response.model", "gen_ai.request.model"); ok {
		update.Model = &modelID
	}

	extract.Tokens(attrs, agentMarkTokenKeys).ApplyTo(update)

	if reason, ok := agentMarkFinishReason(attrs); ok {
		update.FinishReason = &reason
	}

	if raw, ok := extract.String(attrs, "gen_ai.request.input"); ok {
		update.Input = agentMarkInput(raw)
	}
	if raw, ok := extract.Value(attrs, "gen_ai.response.output"); ok {
		applyAgentMarkOutput(update, raw)
	}

	// A tool span is renamed to the tool it ran, not just re-typed, and
	// its invocation is surfaced in the canonical tool-call shape.
	if toolName, ok := extract.String(attrs, "gen_ai.tool.name"); ok {
		update.Name = &toolName
		call := model.ToolCall{Type: "tool-call", ToolName: toolName}
		if id, ok := extract.String(attrs, "gen_ai.tool.call.id"); ok {
			call.ToolCallID = id
		}
		call.Args = parsedOrRaw(attrs["gen_ai.tool.input"])
		if raw, ok := extract.Value(attrs, "gen_ai.tool.output"); ok {
			call.Result = parsedOrRaw(raw)
		}
		update.ToolCalls = []model.ToolCall{call}
	}

	var settings map[string]any
	for _, field := range agentMarkSettingKeys {
		if value, ok := extract.Value(attrs, field.key); ok {
			if settings == nil {
				settings = make(map[string]any, len(agentMarkSettingKeys))
			}
			settings[field.name] = value
		}
	}
	if settings != nil {
		update.Settings = settings
	}
	return update
}

// agentMarkFinishReason reads gen_ai.response.finish_reasons: a JSON array
// takes its first element, anything else is used as-is.
func agentMarkFinishReason(attrs model.Attributes) (string, bool) {
	raw, ok := extract.Value(attrs, "gen_ai.response.finish_reasons")
	if !ok {
		return "", false
	}
	switch v := raw.(type) {
	case string:
		if parsed, ok := extract.TryJSON(v); ok {
			if items, isArray := parsed.([]any); isArray {
				if len(items) == 0 {
					return "", false
				}
				if s, isString := items[0].(string); isString {
					return s, true
				}
				return "", false
			}
		}
		return v, true
	case []any:
		if len(v) == 0 {
			return "", false
		}
		if s, isString := v[0].(string); isString {
			return s, true
		}
	}
	return "", false
}

// agentMarkInput resolves the free-text request input with a three-way
// fallback: a JSON array of {role, content} objects is used as-is; any
// other JSON array is wrapped as a single user message whose content is
// the original string, not the parsed value; everything else (non-JSON,
// empty array, JSON object) wraps the same way.
func agentMarkInput(raw string) []model.Message {
	if parsed, ok := extract.TryJSON(raw); ok {
		if messages, ok := asMessages(parsed); ok {
			return messages
		}
	}
	return []model.Message{{Role: "user", Content: raw}}
}

func applyAgentMarkOutput(update *model.Update, raw any) {
	if s, ok := raw.(string); ok {
		if parsed, ok := extract.TryJSON(s); ok {
			switch parsed.(type) {
			case map[string]any, []any:
				update.OutputObject = parsed
				return
			}
		}
		update.Output = &s
		return
	}
	update.OutputObject = raw
}

func parsedOrRaw(value any) any {
	if s, ok := value.(string); ok {
		if parsed, ok := extract.TryJSON(s); ok {
			return parsed
		}
	}
	return value
}
