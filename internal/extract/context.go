// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package extract // import "github.com/agentmark-ai/genainormalizerconnector/internal/extract"

import "github.com/agentmark-ai/genainormalizerconnector/pkg/model"

// ContextKeys is the key table for first-party trace-context attributes.
// MetadataPrefix names the namespaced channel that may supply the same
// logical fields but never overrides a direct attribute.
type ContextKeys struct {
	TraceName             string
	SessionID             string
	SessionName           string
	UserID                string
	DatasetRunID          string
	DatasetRunName        string
	DatasetItemName       string
	DatasetExpectedOutput string
	PromptName            string
	MetadataPrefix        string
}

// DefaultContextKeys is the agentmark attribute namespace.
var DefaultContextKeys = ContextKeys{
	TraceName:             "agentmark.trace_name",
	SessionID:             "agentmark.session_id",
	SessionName:           "agentmark.session_name",
	UserID:                "agentmark.user_id",
	DatasetRunID:          "agentmark.dataset_run_id",
	DatasetRunName:        "agentmark.dataset_run_name",
	DatasetItemName:       "agentmark.dataset_item_name",
	DatasetExpectedOutput: "agentmark.dataset_expected_output",
	PromptName:            "agentmark.prompt_name",
	MetadataPrefix:        "agentmark.metadata.",
}

// Context resolves the trace-context fields. The metadata channel is read
// first and the direct attributes are resolved on top of it, so a direct
// attribute always wins when both carry the same logical field. The full
// metadata map rides along on the update.
func Context(attrs model.Attributes, keys ContextKeys) *model.Update {
	update := &model.Update{}
	metadata := PrefixedMap(attrs, keys.MetadataPrefix)
	if metadata != nil {
		update.Metadata = metadata
	}

	update.TraceName = contextField(attrs, metadata, keys.TraceName, "trace_name")
	update.SessionID = contextField(attrs, metadata, keys.SessionID, "session_id")
	update.SessionName = contextField(attrs, metadata, keys.SessionName, "session_name")
	update.UserID = contextField(attrs, metadata, keys.UserID, "user_id")
	update.DatasetRunID = contextField(attrs, metadata, keys.DatasetRunID, "dataset_run_id")
	update.DatasetRunName = contextField(attrs, metadata, keys.DatasetRunName, "dataset_run_name")
	update.DatasetItemName = contextField(attrs, metadata, keys.DatasetItemName, "dataset_item_name")
	update.DatasetExpectedOutput = contextField(attrs, metadata, keys.DatasetExpectedOutput, "dataset_expected_output")
	update.PromptName = contextField(attrs, metadata, keys.PromptName, "prompt_name")
	return update
}

func contextField(attrs model.Attributes, metadata map[string]any, directKey, metadataName string) *string {
	if s, ok := String(attrs, directKey); ok {
		return &s
	}
	if s, ok := metadata[metadataName].(string); ok {
		return &s
	}
	return nil
}
