// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package normalizer // import "github.com/agentmark-ai/genainormalizerconnector/pkg/normalizer"

import (
	"strings"

	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// Attribute groups for the scope-independent classifier. Generic GenAI
// conventions are checked before SDK-specific namespaces so a producer
// emitting both is judged on the standard keys.
var genAISignals = []string{
	"gen_ai.system",
	"gen_ai.request.model",
	"gen_ai.response.model",
	"gen_ai.usage.input_tokens",
	"gen_ai.usage.output_tokens",
}

var sdkResponseSignals = []string{
	"ai.response.text",
	"ai.response.object",
	"ai.response.toolCalls",
	"ai.result.text",
	"ai.result.object",
	"ai.result.toolCalls",
	"ai.usage.promptTokens",
	"ai.usage.inputTokens",
}

var generationNamePrefixes = []string{
	"ai.generateText",
	"ai.streamText",
	"ai.generateObject",
	"ai.streamObject",
}

// ClassifyType is the heuristic used when no scope-specific transformer is
// registered: ordered checks, first match wins, SPAN otherwise.
func ClassifyType(span model.Span, attrs model.Attributes) model.SpanType {
	for _, key := range genAISignals {
		if v, ok := attrs[key]; ok && v != nil {
			return model.TypeGeneration
		}
	}
	for _, key := range sdkResponseSignals {
		if v, ok := attrs[key]; ok && v != nil {
			return model.TypeGeneration
		}
	}
	for _, prefix := range generationNamePrefixes {
		if strings.HasPrefix(span.Name, prefix) {
			return model.TypeGeneration
		}
	}
	return model.TypeSpan
}
