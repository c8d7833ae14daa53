// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package aisdk // import "github.com/agentmark-ai/genainormalizerconnector/internal/aisdk"

import (
	"github.com/agentmark-ai/genainormalizerconnector/internal/extract"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// Strategy extracts generation fields for one SDK version. Every method
// degrades to its zero value with ok=false when the producer did not emit
// the field or emitted something unreadable; one bad field never voids the
// rest of the span.
type Strategy interface {
	Version() Version
	Model(attrs model.Attributes) (string, bool)
	InputMessages(attrs model.Attributes) ([]model.Message, bool)
	OutputText(attrs model.Attributes) (string, bool)
	OutputObject(attrs model.Attributes) (any, bool)
	ToolCalls(attrs model.Attributes) ([]model.ToolCall, bool)
	FinishReason(attrs model.Attributes) (string, bool)
	Settings(attrs model.Attributes) (map[string]any, bool)
	Usage(attrs model.Attributes) extract.TokenCounts
	// ReasoningTokens resolves the reasoning count from the version's
	// sources. ok means a source was present at all; a present source
	// that does not yield a number reports 0, never absent.
	ReasoningTokens(attrs model.Attributes) (float64, bool)
}

func extractModel(attrs model.Attributes) (string, bool) {
	return extract.String(attrs, keyModelID, keyReqModel)
}

// extractMessages reads the prompt messages attribute as either a JSON
// string or an already-structured array. Anything that is not ultimately
// an array is absent.
func extractMessages(attrs model.Attributes, keys ...string) ([]model.Message, bool) {
	raw, ok := extract.Value(attrs, keys...)
	if !ok {
		return nil, false
	}
	if s, isString := raw.(string); isString {
		parsed, ok := extract.TryJSON(s)
		if !ok {
			return nil, false
		}
		raw = parsed
	}
	items, isArray := raw.([]any)
	if !isArray {
		return nil, false
	}
	messages := make([]model.Message, 0, len(items))
	for _, item := range items {
		entry, isMap := item.(map[string]any)
		if !isMap {
			messages = append(messages, model.Message{Role: "user", Content: item})
			continue
		}
		message := model.Message{Content: entry["content"]}
		if role, ok := entry["role"].(string); ok {
			message.Role = role
		}
		messages = append(messages, message)
	}
	return messages, true
}

// extractToolCalls normalizes a version's tool-call payload into the
// canonical shape. argsField and resultField name the version-specific
// fields; unwrapResult handles v5's {type, value} result envelope.
func extractToolCalls(attrs model.Attributes, key, argsField, resultField string, unwrapResult bool) ([]model.ToolCall, bool) {
	raw, ok := extract.Value(attrs, key)
	if !ok {
		return nil, false
	}
	if s, isString := raw.(string); isString {
		parsed, ok := extract.TryJSON(s)
		if !ok {
			return nil, false
		}
		raw = parsed
	}
	items, isArray := raw.([]any)
	if !isArray {
		return nil, false
	}
	calls := make([]model.ToolCall, 0, len(items))
	for _, item := range items {
		entry, isMap := item.(map[string]any)
		if !isMap {
			continue
		}
		call := model.ToolCall{Type: "tool-call"}
		if t, ok := entry["toolCallType"].(string); ok {
			call.Type = t
		} else if t, ok := entry["type"].(string); ok {
			call.Type = t
		}
		if id, ok := entry["toolCallId"].(string); ok {
			call.ToolCallID = id
		} else if id, ok := entry["id"].(string); ok {
			call.ToolCallID = id
		}
		if name, ok := entry["toolName"].(string); ok {
			call.ToolName = name
		} else if name, ok := entry["name"].(string); ok {
			call.ToolName = name
		}
		call.Args = jsonField(entry, argsField)
		if result, present := entry[resultField]; present {
			if unwrapResult {
				if envelope, isMap := result.(map[string]any); isMap {
					if value, hasValue := envelope["value"]; hasValue {
						result = value
					}
				}
			}
			call.Result = result
		}
		calls = append(calls, call)
	}
	return calls, true
}

// jsonField returns entry[field], expanding an embedded JSON string.
func jsonField(entry map[string]any, field string) any {
	value := entry[field]
	if s, ok := value.(string); ok {
		if parsed, ok := extract.TryJSON(s); ok {
			return parsed
		}
	}
	return value
}

// extractFinishReason prefers the version key, then the shared GenAI key.
// Array values take the first element.
func extractFinishReason(attrs model.Attributes, versionKey string) (string, bool) {
	raw, ok := extract.Value(attrs, versionKey, keyFinishShared)
	if !ok {
		return "", false
	}
	switch v := raw.(type) {
	case string:
		return v, true
	case []any:
		if len(v) == 0 {
			return "", false
		}
		if s, ok := v[0].(string); ok {
			return s, true
		}
	}
	return "", false
}

// settingField pairs a canonical settings name with its candidate keys,
// OTel convention first.
type settingField struct {
	name string
	keys []string
}

// extractSettings builds the settings map field by field. The map is
// absent as a whole when no field is present; there is never an
// all-empty settings object.
func extractSettings(attrs model.Attributes, fields []settingField) (map[string]any, bool) {
	var settings map[string]any
	for _, field := range fields {
		value, ok := extract.Value(attrs, field.keys...)
		if !ok {
			continue
		}
		if settings == nil {
			settings = make(map[string]any, len(fields))
		}
		settings[field.name] = value
	}
	return settings, settings != nil
}

// providerReasoningTokens digs the reasoning count out of the SDK's
// provider metadata attribute: a JSON object keyed by provider, any of
// which may expose reasoningTokens. ok reports whether the attribute was
// present at all; present but unreadable yields 0.
func providerReasoningTokens(attrs model.Attributes) (float64, bool) {
	raw, ok := extract.Value(attrs, keyProviderMeta)
	if !ok {
		return 0, false
	}
	if s, isString := raw.(string); isString {
		parsed, ok := extract.TryJSON(s)
		if !ok {
			return 0, true
		}
		raw = parsed
	}
	providers, isMap := raw.(map[string]any)
	if !isMap {
		return 0, true
	}
	for _, fields := range providers {
		entry, isMap := fields.(map[string]any)
		if !isMap {
			continue
		}
		if n, isNumber := entry["reasoningTokens"].(float64); isNumber {
			return n, true
		}
	}
	return 0, true
}
