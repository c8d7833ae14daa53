// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

// Package aisdk extracts generation fields from Vercel AI SDK telemetry
// spans. The SDK renamed most of its attribute namespace between v4 and v5
// while old producers keep emitting the old names, so extraction runs
// behind a version detector and two keyed strategies.
package aisdk // import "github.com/agentmark-ai/genainormalizerconnector/internal/aisdk"

// Attribute keys shared by every SDK version.
const (
	keyModelID       = "ai.model.id"
	keyModelProvider = "ai.model.provider"
	keyPrompt        = "ai.prompt"
	keyPromptMsgs    = "ai.prompt.messages"
	keyFinishShared  = "gen_ai.response.finish_reasons"
	keyProviderMeta  = "ai.response.providerMetadata"

	// MetadataPrefix is the SDK's telemetry metadata sub-namespace
	// (functionId and free-form user metadata live under it).
	MetadataPrefix = "ai.telemetry.metadata."
	KeyFunctionID  = "ai.telemetry.functionId"
)

// v4 namespace: results under ai.result.*, usage in prompt/completion terms.
const (
	keyV4ResultText      = "ai.result.text"
	keyV4ResultObject    = "ai.result.object"
	keyV4ResultToolCalls = "ai.result.toolCalls"
	keyV4FinishReason    = "ai.finishReason"
	keyV4PromptTokens    = "ai.usage.promptTokens"
	keyV4CompletionToks  = "ai.usage.completionTokens"
)

// v5 namespace: results under ai.response.*, usage in input/output terms,
// reasoning tokens as first-class usage.
const (
	keyV5ResponseText      = "ai.response.text"
	keyV5ResponseObject    = "ai.response.object"
	keyV5ResponseToolCalls = "ai.response.toolCalls"
	keyV5FinishReason      = "ai.response.finishReason"
	keyV5InputTokens       = "ai.usage.inputTokens"
	keyV5OutputTokens      = "ai.usage.outputTokens"
	keyV5ReasoningTokens   = "ai.usage.reasoningTokens"
)

// OTel GenAI request keys, preferred over the SDK's own settings keys.
const (
	keyReqMaxTokens        = "gen_ai.request.max_tokens"
	keyReqTemperature      = "gen_ai.request.temperature"
	keyReqTopP             = "gen_ai.request.top_p"
	keyReqTopK             = "gen_ai.request.top_k"
	keyReqPresencePenalty  = "gen_ai.request.presence_penalty"
	keyReqFrequencyPenalty = "gen_ai.request.frequency_penalty"
	keyReqStopSequences    = "gen_ai.request.stop_sequences"
	keyReqModel            = "gen_ai.request.model"
)
