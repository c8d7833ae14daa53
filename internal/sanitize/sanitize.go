// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

// Package sanitize filters attribute keys before they are assigned into any
// map the pipeline emits. The canonical record ends up in a JavaScript
// consumer, so keys that collide with Object prototype members are dropped
// at the boundary instead of being escaped downstream.
package sanitize // import "github.com/agentmark-ai/genainormalizerconnector/internal/sanitize"

var dangerous = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// SafeKey reports whether key may be used as a map key in pipeline output.
// Empty keys and prototype-polluting keys are rejected.
func SafeKey(key string) bool {
	if key == "" {
		return false
	}
	_, bad := dangerous[key]
	return !bad
}
