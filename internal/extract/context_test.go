// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
)

func TestContextDirectAttributes(t *testing.T) {
	update := Context(model.Attributes{
		"agentmark.trace_name":  "checkout-flow",
		"agentmark.session_id":  "sess-1",
		"agentmark.user_id":     "user-9",
		"agentmark.prompt_name": "checkout",
	}, DefaultContextKeys)

	require.NotNil(t, update.TraceName)
	assert.Equal(t, "checkout-flow", *update.TraceName)
	require.NotNil(t, update.SessionID)
	assert.Equal(t, "sess-1", *update.SessionID)
	require.NotNil(t, update.UserID)
	assert.Equal(t, "user-9", *update.UserID)
	require.NotNil(t, update.PromptName)
	assert.Equal(t, "checkout", *update.PromptName)
	assert.Nil(t, update.DatasetRunID)
}

func TestContextMetadataSuppliesButNeverOverrides(t *testing.T) {
	update := Context(model.Attributes{
		"agentmark.session_id":          "direct-session",
		"agentmark.metadata.session_id": "metadata-session",
		"agentmark.metadata.user_id":    "metadata-user",
	}, DefaultContextKeys)

	// Direct attribute wins over the metadata channel.
	require.NotNil(t, update.SessionID)
	assert.Equal(t, "direct-session", *update.SessionID)

	// The metadata channel may supply fields with no direct source.
	require.NotNil(t, update.UserID)
	assert.Equal(t, "metadata-user", *update.UserID)

	// The raw metadata map still carries everything.
	assert.Equal(t, "metadata-session", update.Metadata["session_id"])
}

func TestContextEmpty(t *testing.T) {
	update := Context(model.Attributes{"unrelated": "x"}, DefaultContextKeys)
	assert.Nil(t, update.SessionID)
	assert.Nil(t, update.Metadata)
}
