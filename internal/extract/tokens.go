// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package extract // import "github.com/agentmark-ai/genainormalizerconnector/internal/extract"

import "github.com/agentmark-ai/genainormalizerconnector/pkg/model"

// TokenKeys is the per-producer key table for usage extraction. Each slot
// lists candidate attribute keys in preference order.
type TokenKeys struct {
	Input  []string
	Output []string
	Total  []string
}

// TokenCounts is the extracted usage. Nil means the producer said nothing;
// zero is a real count and must survive as such.
type TokenCounts struct {
	Input  *float64
	Output *float64
	Total  *float64
}

// Tokens reads usage counts through the key table. When the producer omits
// the total but supplied both operands, the total is derived.
func Tokens(attrs model.Attributes, keys TokenKeys) TokenCounts {
	var counts TokenCounts
	if v, ok := Number(attrs, keys.Input...); ok {
		counts.Input = &v
	}
	if v, ok := Number(attrs, keys.Output...); ok {
		counts.Output = &v
	}
	if v, ok := Number(attrs, keys.Total...); ok {
		counts.Total = &v
	}
	if counts.Total == nil && counts.Input != nil && counts.Output != nil {
		total := *counts.Input + *counts.Output
		counts.Total = &total
	}
	return counts
}

// ApplyTo copies the counts onto an update.
func (c TokenCounts) ApplyTo(update *model.Update) {
	update.InputTokens = c.Input
	update.OutputTokens = c.Output
	update.TotalTokens = c.Total
}
