// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package aisdk // import "github.com/agentmark-ai/genainormalizerconnector/internal/aisdk"

import (
	"github.com/agentmark-ai/genainormalizerconnector/internal/extract"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// v5Strategy reads the current attribute namespace: results under
// ai.response.*, usage as input/output tokens, tool calls carrying
// input/output fields with the result wrapped in a typed envelope.
type v5Strategy struct{}

var v5TokenKeys = extract.TokenKeys{
	Input:  []string{keyV5InputTokens, "gen_ai.usage.input_tokens"},
	Output: []string{keyV5OutputTokens, "gen_ai.usage.output_tokens"},
	Total:  []string{"ai.usage.totalTokens"},
}

var v5SettingFields = []settingField{
	{"maxTokens", []string{keyReqMaxTokens, "ai.settings.maxOutputTokens"}},
	{"temperature", []string{keyReqTemperature, "ai.settings.temperature"}},
	{"topP", []string{keyReqTopP, "ai.settings.topP"}},
	{"topK", []string{keyReqTopK, "ai.settings.topK"}},
	{"presencePenalty", []string{keyReqPresencePenalty, "ai.settings.presencePenalty"}},
	{"frequencyPenalty", []string{keyReqFrequencyPenalty, "ai.settings.frequencyPenalty"}},
	{"stopSequences", []string{keyReqStopSequences, "ai.settings.stopSequences"}},
	{"seed", []string{"ai.settings.seed"}},
}

func (v5Strategy) Version() Version { return V5 }

func (v5Strategy) Model(attrs model.Attributes) (string, bool) {
	return extractModel(attrs)
}

func (v5Strategy) InputMessages(attrs model.Attributes) ([]model.Message, bool) {
	return extractMessages(attrs, keyPromptMsgs)
}

func (v5Strategy) OutputText(attrs model.Attributes) (string, bool) {
	return extract.String(attrs, keyV5ResponseText)
}

func (v5Strategy) OutputObject(attrs model.Attributes) (any, bool) {
	raw, ok := extract.String(attrs, keyV5ResponseObject)
	if !ok {
		return nil, false
	}
	parsed, ok := extract.TryJSON(raw)
	if !ok {
		return nil, false
	}
	return parsed, true
}

func (v5Strategy) ToolCalls(attrs model.Attributes) ([]model.ToolCall, bool) {
	return extractToolCalls(attrs, keyV5ResponseToolCalls, "input", "output", true)
}

func (v5Strategy) FinishReason(attrs model.Attributes) (string, bool) {
	return extractFinishReason(attrs, keyV5FinishReason)
}

func (v5Strategy) Settings(attrs model.Attributes) (map[string]any, bool) {
	return extractSettings(attrs, v5SettingFields)
}

func (v5Strategy) Usage(attrs model.Attributes) extract.TokenCounts {
	return extract.Tokens(attrs, v5TokenKeys)
}

// ReasoningTokens: the dedicated usage key wins; provider metadata is the
// fallback for providers that only report it there.
func (v5Strategy) ReasoningTokens(attrs model.Attributes) (float64, bool) {
	if raw, present := attrs[keyV5ReasoningTokens]; present && raw != nil {
		if n, ok := extract.Number(attrs, keyV5ReasoningTokens); ok {
			return n, true
		}
		return 0, true
	}
	return providerReasoningTokens(attrs)
}
