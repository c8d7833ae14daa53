// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package normalizer // import "github.com/agentmark-ai/genainormalizerconnector/pkg/normalizer"

import (
	"fmt"

	"go.opentelemetry.io/collector/pdata/ptrace"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/agentmark-ai/genainormalizerconnector/internal/extract"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/otlpjson"
)

// Normalizer orchestrates decode, classification, transformation and the
// canonical merge. It is stateless per call; the registry must be fully
// populated before the first call.
type Normalizer struct {
	registry    *Registry
	logger      *zap.Logger
	contextKeys extract.ContextKeys
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger attaches a logger; the default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Normalizer) { n.logger = logger }
}

// WithContextKeys overrides the first-party context key table.
func WithContextKeys(keys extract.ContextKeys) Option {
	return func(n *Normalizer) { n.contextKeys = keys }
}

// New builds a normalizer around the given registry.
func New(registry *Registry, opts ...Option) *Normalizer {
	n := &Normalizer{
		registry:    registry,
		logger:      zap.NewNop(),
		contextKeys: extract.DefaultContextKeys,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NormalizeOne produces the canonical record for a single tuple. The only
// fatal condition is an unparseable span timestamp; every per-field
// extraction failure degrades to an absent field instead.
func (n *Normalizer) NormalizeOne(tuple model.Tuple) (model.NormalizedSpan, error) {
	span := tuple.Span
	merged := tuple.Resource.Attributes.Merge(span.Attributes)

	start, err := otlpjson.NanosToMillis(span.StartTimeUnixNano)
	if err != nil {
		return model.NormalizedSpan{}, fmt.Errorf("span %q start: %w", span.SpanID, err)
	}
	end, err := otlpjson.NanosToMillis(span.EndTimeUnixNano)
	if err != nil {
		return model.NormalizedSpan{}, fmt.Errorf("span %q end: %w", span.SpanID, err)
	}

	record := model.NormalizedSpan{
		TraceID:      span.TraceID,
		SpanID:       span.SpanID,
		ParentSpanID: span.ParentSpanID,
		TraceState:   span.TraceState,
		Name:         span.Name,
		Kind:         span.Kind,
		Type:         model.TypeSpan,
		StartTime:    start,
		EndTime:      end,
		Duration:     end - start,

		Attributes:         span.Attributes,
		ResourceAttributes: tuple.Resource.Attributes,
		Events:             span.Events,
		Links:              span.Links,
	}
	if span.Status != nil {
		record.StatusCode = span.Status.Code
		record.StatusMessage = span.Status.Message
	}
	// Strictly from resource attributes: a span attribute must not be able
	// to spoof the reporting service.
	if service, ok := tuple.Resource.Attributes["service.name"].(string); ok {
		record.ServiceName = service
	}

	if transformer, ok := n.registry.Get(tuple.Scope.Name); ok {
		record.Type = transformer.Classify(span, merged)
		transformer.Transform(span, merged).Apply(&record)
	}

	// The direct first-party context is re-read and merged last no matter
	// which transformer ran: it is the highest-priority source for
	// identity and context fields.
	extract.Context(merged, n.contextKeys).Apply(&record)

	return record, nil
}

// NormalizeTuples normalizes tuples in input order. A tuple with a fatal
// decode error is skipped and reported; the rest of the batch still
// normalizes, and the accumulated error describes every skipped span.
func (n *Normalizer) NormalizeTuples(tuples []model.Tuple) ([]model.NormalizedSpan, error) {
	records := make([]model.NormalizedSpan, 0, len(tuples))
	var errs error
	for _, tuple := range tuples {
		record, err := n.NormalizeOne(tuple)
		if err != nil {
			n.logger.Warn("dropping span",
				zap.String("scope", tuple.Scope.Name),
				zap.String("span_id", tuple.Span.SpanID),
				zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		records = append(records, record)
	}
	return records, errs
}

// NormalizeBatch unrolls raw resource-span groups and normalizes every
// resulting tuple, preserving input order.
func (n *Normalizer) NormalizeBatch(groups []otlpjson.ResourceSpans) ([]model.NormalizedSpan, error) {
	tuples, err := otlpjson.Unroll(groups)
	if err != nil {
		return nil, err
	}
	return n.NormalizeTuples(tuples)
}

// NormalizeTraces is the pdata entry point for in-collector use.
func (n *Normalizer) NormalizeTraces(td ptrace.Traces) ([]model.NormalizedSpan, error) {
	return n.NormalizeTuples(otlpjson.FromTraces(td))
}
