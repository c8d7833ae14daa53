// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package aisdk // import "github.com/agentmark-ai/genainormalizerconnector/internal/aisdk"

import "github.com/agentmark-ai/genainormalizerconnector/pkg/model"

// Version is the detected SDK major version of a span's producer.
type Version int

const (
	VersionUnknown Version = iota
	V4
	V5
)

func (v Version) String() string {
	switch v {
	case V4:
		return "v4"
	case V5:
		return "v5"
	}
	return "unknown"
}

var v5Signals = []string{
	keyV5ResponseText,
	keyV5ResponseObject,
	keyV5ResponseToolCalls,
	keyV5FinishReason,
	keyV5InputTokens,
	keyV5OutputTokens,
	keyV5ReasoningTokens,
}

var v4Signals = []string{
	keyV4ResultText,
	keyV4ResultObject,
	keyV4ResultToolCalls,
	keyV4PromptTokens,
	keyV4CompletionToks,
	keyPrompt,
	keyPromptMsgs,
}

// Detect decides which strategy applies to a span's attributes. A present,
// non-nil v5 response attribute wins over any v4 signal; otherwise any
// v4 result or prompt attribute selects v4. Callers treat VersionUnknown
// as v4 to keep pre-versioning producers working.
func Detect(attrs model.Attributes) Version {
	for _, key := range v5Signals {
		if v, ok := attrs[key]; ok && v != nil {
			return V5
		}
	}
	for _, key := range v4Signals {
		if v, ok := attrs[key]; ok && v != nil {
			return V4
		}
	}
	return VersionUnknown
}

// ForVersion returns the strategy for a detected version, defaulting
// unknown producers to the v4 strategy.
func ForVersion(v Version) Strategy {
	if v == V5 {
		return v5Strategy{}
	}
	return v4Strategy{}
}
