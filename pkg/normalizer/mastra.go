// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package normalizer // import "github.com/agentmark-ai/genainormalizerconnector/pkg/normalizer"

import (
	"github.com/agentmark-ai/genainormalizerconnector/internal/extract"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// mastraTransformer handles spans from the Mastra agent framework. Mastra
// has no single fixed key scheme: payload attributes are prefixed with the
// span name (agent.generate.argument.0), so extraction probes candidates
// from most to least specific.
type mastraTransformer struct{}

// NewMastraTransformer returns the transformer for the Mastra scopes.
func NewMastraTransformer() Transformer { return mastraTransformer{} }

var mastraGenerationNames = map[string]struct{}{
	"agent.generate": {},
	"agent.stream":   {},
	"llm.generate":   {},
	"llm.stream":     {},
}

var mastraTokenKeys = extract.TokenKeys{
	Input:  []string{"gen_ai.usage.input_tokens", "gen_ai.usage.prompt_tokens"},
	Output: []string{"gen_ai.usage.output_tokens", "gen_ai.usage.completion_tokens"},
	Total:  []string{"gen_ai.usage.total_tokens"},
}

func (mastraTransformer) Classify(span model.Span, _ model.Attributes) model.SpanType {
	if _, ok := mastraGenerationNames[span.Name]; ok {
		return model.TypeGeneration
	}
	return model.TypeSpan
}

func (mastraTransformer) Transform(span model.Span, attrs model.Attributes) *model.Update {
	update := &model.Update{}

	if modelID, ok := extract.String(attrs, "ai.model.id", "gen_ai.request.model", "model"); ok {
		update.Model = &modelID
	}

	if raw, ok := extract.Value(attrs, span.Name+".argument.0", "input"); ok {
		update.Input = mastraInput(raw)
	}
	if raw, ok := extract.Value(attrs, span.Name+".result", "output"); ok {
		applyMastraOutput(update, raw)
	}

	extract.Tokens(attrs, mastraTokenKeys).ApplyTo(update)

	// Trace name: first-party context wins when the span went through the
	// agentmark SDK, otherwise the framework's generic component name.
	if name, ok := extract.String(attrs, "agentmark.trace_name", "componentName"); ok {
		update.TraceName = &name
	}
	if metadata := extract.PrefixedMap(attrs, "agentmark.metadata."); metadata != nil {
		update.Metadata = metadata
	}
	return update
}

// mastraInput shapes a probed input payload into canonical messages.
// Embedded JSON is parsed defensively; anything that is not a role/content
// array becomes a single user message.
func mastraInput(raw any) []model.Message {
	if s, ok := raw.(string); ok {
		if parsed, ok := extract.TryJSON(s); ok {
			raw = parsed
		}
	}
	if messages, ok := asMessages(raw); ok {
		return messages
	}
	return []model.Message{{Role: "user", Content: raw}}
}

func applyMastraOutput(update *model.Update, raw any) {
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

// asMessages accepts a non-empty array whose entries all look like
// {role, content} objects.
func asMessages(raw any) ([]model.Message, bool) {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return nil, false
	}
	messages := make([]model.Message, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		role, ok := entry["role"].(string)
		if !ok {
			return nil, false
		}
		if _, ok := entry["content"]; !ok {
			return nil, false
		}
		messages = append(messages, model.Message{Role: role, Content: entry["content"]})
	}
	return messages, true
}
