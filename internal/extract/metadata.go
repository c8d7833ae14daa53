// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package extract // import "github.com/agentmark-ai/genainormalizerconnector/internal/extract"

import (
	"strings"

	"github.com/agentmark-ai/genainormalizerconnector/internal/sanitize"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

// PrefixedMap collects every attribute under prefix into a map keyed by the
// remainder of the attribute name. The remainder is producer-controlled, so
// it goes through the same key filter as wire attributes. String values
// that parse as JSON are expanded; anything else is kept verbatim.
func PrefixedMap(attrs model.Attributes, prefix string) map[string]any {
	var out map[string]any
	for key, value := range attrs {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := key[len(prefix):]
		if !sanitize.SafeKey(name) {
			continue
		}
		if s, ok := value.(string); ok {
			if parsed, ok := TryJSON(s); ok {
				value = parsed
			}
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[name] = value
	}
	return out
}
