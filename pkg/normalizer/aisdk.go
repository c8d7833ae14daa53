// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package normalizer // import "github.com/agentmark-ai/genainormalizerconnector/pkg/normalizer"

import (
	"github.com/agentmark-ai/genainormalizerconnector/internal/aisdk"
	"github.com/agentmark-ai/genainormalizerconnector/internal/extract"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// aiSDKTransformer handles spans from the Vercel AI SDK's built-in
// telemetry (scope "ai"), delegating field extraction to the strategy for
// the detected SDK version.
type aiSDKTransformer struct{}

// NewAISDKTransformer returns the transformer for the AI SDK scope.
func NewAISDKTransformer() Transformer { return aiSDKTransformer{} }

// Only the do-generate/do-stream operations are generations. This is
// deliberately narrower than ClassifyType: the SDK nests wrapper spans
// (ai.generateText around ai.generateText.doGenerate) that carry the same
// attributes but are not themselves model calls.
var aiSDKGenerationNames = map[string]struct{}{
	"ai.generateText.doGenerate":   {},
	"ai.streamText.doStream":       {},
	"ai.generateObject.doGenerate": {},
	"ai.streamObject.doStream":     {},
}

func (aiSDKTransformer) Classify(span model.Span, _ model.Attributes) model.SpanType {
	if _, ok := aiSDKGenerationNames[span.Name]; ok {
		return model.TypeGeneration
	}
	return model.TypeSpan
}

func (aiSDKTransformer) Transform(_ model.Span, attrs model.Attributes) *model.Update {
	strategy := aisdk.ForVersion(aisdk.Detect(attrs))
	update := &model.Update{}

	if modelID, ok := strategy.Model(attrs); ok {
		update.Model = &modelID
	}
	if messages, ok := strategy.InputMessages(attrs); ok {
		update.Input = messages
	}
	if text, ok := strategy.OutputText(attrs); ok {
		update.Output = &text
	}
	if object, ok := strategy.OutputObject(attrs); ok {
		update.OutputObject = object
	}
	if calls, ok := strategy.ToolCalls(attrs); ok {
		update.ToolCalls = calls
	}
	if reason, ok := strategy.FinishReason(attrs); ok {
		update.FinishReason = &reason
	}
	if settings, ok := strategy.Settings(attrs); ok {
		update.Settings = settings
	}
	strategy.Usage(attrs).ApplyTo(update)
	if reasoning, ok := strategy.ReasoningTokens(attrs); ok {
		update.ReasoningTokens = &reasoning
	}
	if metadata := extract.PrefixedMap(attrs, aisdk.MetadataPrefix); metadata != nil {
		update.Metadata = metadata
	}
	if functionID, ok := extract.String(attrs, aisdk.KeyFunctionID); ok {
		update.TraceName = &functionID
	}
	return update
}
