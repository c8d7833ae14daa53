// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package aisdk // import "github.com/agentmark-ai/genainormalizerconnector/internal/aisdk"

import (
	"github.com/agentmark-ai/genainormalizerconnector/internal/extract"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// v4Strategy reads the pre-v5 attribute namespace: results under
// ai.result.*, usage as prompt/completion tokens, tool calls carrying
// args/result fields. Also serves undetectable producers.
type v4Strategy struct{}

var v4TokenKeys = extract.TokenKeys{
	Input:  []string{keyV4PromptTokens, "gen_ai.usage.prompt_tokens"},
	Output: []string{keyV4CompletionToks, "gen_ai.usage.completion_tokens"},
	Total:  []string{"ai.usage.tokens"},
}

var v4SettingFields = []settingField{
	{"maxTokens", []string{keyReqMaxTokens, "ai.settings.maxTokens"}},
	{"temperature", []string{keyReqTemperature, "ai.settings.temperature"}},
	{"topP", []string{keyReqTopP, "ai.settings.topP"}},
	{"topK", []string{keyReqTopK, "ai.settings.topK"}},
	{"presencePenalty", []string{keyReqPresencePenalty, "ai.settings.presencePenalty"}},
	{"frequencyPenalty", []string{keyReqFrequencyPenalty, "ai.settings.frequencyPenalty"}},
	{"stopSequences", []string{keyReqStopSequences, "ai.settings.stopSequences"}},
	{"seed", []string{"ai.settings.seed"}},
}

func (v4Strategy) Version() Version { return V4 }

func (v4Strategy) Model(attrs model.Attributes) (string, bool) {
	return extractModel(attrs)
}

func (v4Strategy) InputMessages(attrs model.Attributes) ([]model.Message, bool) {
	return extractMessages(attrs, keyPromptMsgs)
}

func (v4Strategy) OutputText(attrs model.Attributes) (string, bool) {
	return extract.String(attrs, keyV4ResultText)
}

func (v4Strategy) OutputObject(attrs model.Attributes) (any, bool) {
	raw, ok := extract.String(attrs, keyV4ResultObject)
	if !ok {
		return nil, false
	}
	parsed, ok := extract.TryJSON(raw)
	if !ok {
		return nil, false
	}
	return parsed, true
}

func (v4Strategy) ToolCalls(attrs model.Attributes) ([]model.ToolCall, bool) {
	return extractToolCalls(attrs, keyV4ResultToolCalls, "args", "result", false)
}

func (v4Strategy) FinishReason(attrs model.Attributes) (string, bool) {
	return extractFinishReason(attrs, keyV4FinishReason)
}

func (v4Strategy) Settings(attrs model.Attributes) (map[string]any, bool) {
	return extractSettings(attrs, v4SettingFields)
}

func (v4Strategy) Usage(attrs model.Attributes) extract.TokenCounts {
	return extract.Tokens(attrs, v4TokenKeys)
}

// ReasoningTokens: v4 never had a usage key for reasoning, so provider
// metadata is the only source.
func (v4Strategy) ReasoningTokens(attrs model.Attributes) (float64, bool) {
	return providerReasoningTokens(attrs)
}
