// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package aisdk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		attrs model.Attributes
		want  Version
	}{
		{
			"v5 response text",
			model.Attributes{"ai.response.text": "hi"},
			V5,
		},
		{
			"v5 usage",
			model.Attributes{"ai.usage.inputTokens": float64(3)},
			V5,
		},
		{
			"v4 result",
			model.Attributes{"ai.result.text": "hi"},
			V4,
		},
		{
			"v4 prompt only",
			model.Attributes{"ai.prompt.messages": "[]"},
			V4,
		},
		{
			"v5 wins the tie",
			model.Attributes{
				"ai.result.text":   "old",
				"ai.response.text": "new",
			},
			V5,
		},
		{
			"nil v5 attribute is not a signal",
			model.Attributes{
				"ai.response.text": nil,
				"ai.result.text":   "old",
			},
			V4,
		},
		{
			"nothing recognizable",
			model.Attributes{"http.method": "GET"},
			VersionUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.attrs))
		})
	}
}

func TestForVersionUnknownFallsBackToV4(t *testing.T) {
	assert.Equal(t, V4, ForVersion(VersionUnknown).Version())
	assert.Equal(t, V4, ForVersion(V4).Version())
	assert.Equal(t, V5, ForVersion(V5).Version())
}
