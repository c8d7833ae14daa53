// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

// Package extract provides the pure lookup and coercion helpers the scope
// transformers are built from. Every function reports failure through an
// explicit second return; nothing in this package panics or logs.
package extract // import "github.com/agentmark-ai/genainormalizerconnector/internal/extract"

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Value returns the first present attribute among keys.
func Value(attrs model.Attributes, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := attrs[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String returns the first attribute among keys that holds a string.
func String(attrs model.Attributes, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := attrs[key].(string); ok {
			return s, true
		}
	}
	return "", false
}

// Number returns the first attribute among keys that can be read as a
// number. Decoded attributes carry float64, but producers also ship counts
// as decimal strings, so those coerce too.
func Number(attrs model.Attributes, keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := attrs[key]
		if !ok {
			continue
		}
		if f, ok := asNumber(v); ok {
			return f, true
		}
	}
	return 0, false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// TryJSON parses s as JSON. Failure is an expected outcome for free-text
// fields, not an error: the caller keeps the raw string instead.
func TryJSON(s string) (any, bool) {
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, false
	}
	return out, true
}
