// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

// Package normalizer turns unrolled span tuples into the canonical
// normalized record. Producer-specific knowledge lives in per-scope
// transformers resolved through an explicit registry; the core only
// decodes, classifies, and merges.
package normalizer // import "github.com/agentmark-ai/genainormalizerconnector/pkg/normalizer"

import "github.com/agentmark-ai/genainormalizerconnector/pkg/model"

// Transformer is the per-scope capability: classify a span and emit a
// partial canonical record from its merged attributes. Implementations are
// stateless and must tolerate arbitrary attribute shapes.
type Transformer interface {
	Classify(span model.Span, attrs model.Attributes) model.SpanType
	Transform(span model.Span, attrs model.Attributes) *model.Update
}

// Registry maps an instrumentation-scope name to its transformer, with an
// optional default for unrecognized scopes. It is intended to be populated
// once at application start and passed into the normalizer; it carries no
// synchronization, so registration must happen-before any normalization.
type Registry struct {
	byScope  map[string]Transformer
	fallback Transformer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byScope: make(map[string]Transformer)}
}

// NewDefaultRegistry wires every producer this pipeline knows about: the
// AI SDK scope, the Mastra agent-framework scopes, the first-party
// agentmark scope, and a heuristic fallback for everything else.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	sdk := NewAISDKTransformer()
	registry.Register(ScopeAISDK, sdk)
	mastra := NewMastraTransformer()
	registry.Register(ScopeMastra, mastra)
	registry.Register(ScopeMastraCore, mastra)
	registry.Register(ScopeAgentMark, NewAgentMarkTransformer())
	registry.SetDefault(defaultTransformer{})
	return registry
}

// Register binds a scope name to a transformer. Last writer wins.
func (r *Registry) Register(scope string, transformer Transformer) {
	r.byScope[scope] = transformer
}

// SetDefault installs the fallback used on exact-match misses. Last writer
// wins.
func (r *Registry) SetDefault(transformer Transformer) {
	r.fallback = transformer
}

// Get resolves a scope name. The fallback applies only when no exact match
// exists; ok is false when there is neither.
func (r *Registry) Get(scope string) (Transformer, bool) {
	if transformer, ok := r.byScope[scope]; ok {
		return transformer, true
	}
	if r.fallback != nil {
		return r.fallback, true
	}
	return nil, false
}

// Registered scope names for the built-in transformers.
const (
	ScopeAISDK      = "ai"
	ScopeMastra     = "mastra"
	ScopeMastraCore = "@mastra/core"
	ScopeAgentMark  = "agentmark"
)

// defaultTransformer classifies by the scope-independent heuristic and
// leaves the record untouched otherwise.
type defaultTransformer struct{}

func (defaultTransformer) Classify(span model.Span, attrs model.Attributes) model.SpanType {
	return ClassifyType(span, attrs)
}

func (defaultTransformer) Transform(model.Span, model.Attributes) *model.Update {
	return nil
}
