// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

// Package otlpjson decodes OTLP/JSON trace payloads into the flat tuples
// consumed by the normalizer. It deliberately does not validate span or
// trace IDs: producers disagree about casing and padding and the pipeline
// treats identity as opaque.
package otlpjson // import "github.com/agentmark-ai/genainormalizerconnector/pkg/otlpjson"

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/agentmark-ai/genainormalizerconnector/internal/sanitize"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AnyValue is the OTLP tagged union for attribute values. Exactly one of
// the kind fields is expected to be set per attribute.
type AnyValue struct {
	StringValue *string              `json:"stringValue"`
	IntValue    *jsoniter.RawMessage `json:"intValue"`
	DoubleValue *jsoniter.RawMessage `json:"doubleValue"`
	BoolValue   *bool                `json:"boolValue"`
	ArrayValue  *ArrayValue          `json:"arrayValue"`
	BytesValue  *string              `json:"bytesValue"`
}

// ArrayValue holds nested values of an array-kind attribute.
type ArrayValue struct {
	Values []AnyValue `json:"values"`
}

// KeyValue is one wire attribute.
type KeyValue struct {
	Key   string   `json:"key"`
	Value AnyValue `json:"value"`
}

// DecodeValue decodes one tagged-union value into its native form. Numeric
// values come back as float64 regardless of wire kind so downstream math
// never branches on integer width; intValue accepts both the canonical
// decimal string and a bare JSON number. The second return is false when no
// kind field is set or a numeric payload does not parse.
func DecodeValue(v AnyValue) (any, bool) {
	switch {
	case v.StringValue != nil:
		return *v.StringValue, true
	case v.IntValue != nil:
		n, err := strconv.ParseInt(unquote(*v.IntValue), 10, 64)
		if err != nil {
			return nil, false
		}
		return float64(n), true
	case v.DoubleValue != nil:
		f, err := strconv.ParseFloat(unquote(*v.DoubleValue), 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case v.BoolValue != nil:
		return *v.BoolValue, true
	case v.ArrayValue != nil:
		out := make([]any, 0, len(v.ArrayValue.Values))
		for _, nested := range v.ArrayValue.Values {
			decoded, ok := DecodeValue(nested)
			if !ok {
				continue
			}
			out = append(out, decoded)
		}
		return out, true
	case v.BytesValue != nil:
		// Kept as the wire's base64 text; nothing downstream needs the
		// raw bytes and the viewer renders the string form.
		return *v.BytesValue, true
	}
	return nil, false
}

// DecodeAttributes flattens a wire attribute list into a map. Keys that are
// empty or that would collide with JavaScript prototype members are
// dropped, as are values that fail to decode.
func DecodeAttributes(kvs []KeyValue) model.Attributes {
	attrs := make(model.Attributes, len(kvs))
	for _, kv := range kvs {
		if !sanitize.SafeKey(kv.Key) {
			continue
		}
		decoded, ok := DecodeValue(kv.Value)
		if !ok {
			continue
		}
		attrs[kv.Key] = decoded
	}
	return attrs
}

// unquote strips one layer of JSON string quoting if present, so numeric
// fields decode the same whether the producer sent "123" or 123.
func unquote(raw jsoniter.RawMessage) string {
	s := string(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// NanosToMillis converts a decimal nanosecond string to milliseconds.
// Dividing the integer first and adding the remainder separately keeps
// sub-millisecond precision a single float division of the full value
// would round away.
func NanosToMillis(ns string) (float64, error) {
	v, err := strconv.ParseUint(ns, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid nanosecond timestamp %q: %w", ns, err)
	}
	return float64(v/1e6) + float64(v%1e6)/1e6, nil
}
