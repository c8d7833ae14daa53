// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package model // import "github.com/agentmark-ai/genainormalizerconnector/pkg/model"

// SpanType is the classification assigned to a normalized span.
type SpanType string

const (
	TypeSpan       SpanType = "SPAN"
	TypeGeneration SpanType = "GENERATION"
	TypeEvent      SpanType = "EVENT"
)

// Message is the canonical shape of one chat message, regardless of how the
// producer encoded it.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ToolCall is the canonical shape of one tool invocation. Args is always
// present; Result only when the producer recorded one.
type ToolCall struct {
	Type       string `json:"type"`
	ToolCallID string `json:"toolCallId"`
	ToolName   string `json:"toolName"`
	Args       any    `json:"args"`
	Result     any    `json:"result,omitempty"`
}

// NormalizedSpan is the canonical record produced by the normalizer and
// consumed read-only by the trace viewer and any persistence layer. Field
// names in JSON are the viewer's contract.
type NormalizedSpan struct {
	TraceID      string   `json:"traceId"`
	SpanID       string   `json:"spanId"`
	ParentSpanID string   `json:"parentSpanId,omitempty"`
	TraceState   string   `json:"traceState,omitempty"`
	Name         string   `json:"name"`
	Kind         int64    `json:"kind"`
	Type         SpanType `json:"type"`

	// Milliseconds since the Unix epoch, derived from the wire's
	// nanosecond strings with sub-millisecond precision preserved.
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Duration  float64 `json:"duration"`

	StatusCode    int64  `json:"statusCode"`
	StatusMessage string `json:"statusMessage,omitempty"`
	ServiceName   string `json:"serviceName,omitempty"`

	Model           string         `json:"model,omitempty"`
	InputTokens     *float64       `json:"inputTokens,omitempty"`
	OutputTokens    *float64       `json:"outputTokens,omitempty"`
	TotalTokens     *float64       `json:"totalTokens,omitempty"`
	ReasoningTokens *float64       `json:"reasoningTokens,omitempty"`
	CostUSD         *float64       `json:"costUsd,omitempty"`
	Input           []Message      `json:"input,omitempty"`
	Output          string         `json:"output,omitempty"`
	OutputObject    any            `json:"outputObject,omitempty"`
	ToolCalls       []ToolCall     `json:"toolCalls,omitempty"`
	FinishReason    string         `json:"finishReason,omitempty"`
	Settings        map[string]any `json:"settings,omitempty"`

	TraceName             string `json:"traceName,omitempty"`
	SessionID             string `json:"sessionId,omitempty"`
	SessionName           string `json:"sessionName,omitempty"`
	UserID                string `json:"userId,omitempty"`
	DatasetRunID          string `json:"datasetRunId,omitempty"`
	DatasetRunName        string `json:"datasetRunName,omitempty"`
	DatasetItemName       string `json:"datasetItemName,omitempty"`
	DatasetExpectedOutput string `json:"datasetExpectedOutput,omitempty"`
	PromptName            string `json:"promptName,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`

	Attributes         Attributes `json:"attributes,omitempty"`
	ResourceAttributes Attributes `json:"resourceAttributes,omitempty"`
	Events             []Event    `json:"events,omitempty"`
	Links              []Link     `json:"links,omitempty"`
}

// Update is a partial record returned by a scope transformer or the direct
// context extractor. Nil fields are "no opinion"; Apply overwrites only the
// fields an update carries.
type Update struct {
	Name *string
	Type *SpanType

	Model           *string
	InputTokens     *float64
	OutputTokens    *float64
	TotalTokens     *float64
	ReasoningTokens *float64
	CostUSD         *float64
	Input           []Message
	Output          *string
	OutputObject    any
	ToolCalls       []ToolCall
	FinishReason    *string
	Settings        map[string]any

	TraceName             *string
	SessionID             *string
	SessionName           *string
	UserID                *string
	DatasetRunID          *string
	DatasetRunName        *string
	DatasetItemName       *string
	DatasetExpectedOutput *string
	PromptName            *string

	Metadata map[string]any
}

// Apply shallow-merges the update onto the record.
func (u *Update) Apply(rec *NormalizedSpan) {
	if u == nil {
		return
	}
	if u.Name != nil {
		rec.Name = *u.Name
	}
	if u.Type != nil {
		rec.Type = *u.Type
	}
	if u.Model != nil {
		rec.Model = *u.Model
	}
	if u.InputTokens != nil {
		rec.InputTokens = u.InputTokens
	}
	if u.OutputTokens != nil {
		rec.OutputTokens = u.OutputTokens
	}
	if u.TotalTokens != nil {
		rec.TotalTokens = u.TotalTokens
	}
	if u.ReasoningTokens != nil {
		rec.ReasoningTokens = u.ReasoningTokens
	}
	if u.CostUSD != nil {
		rec.CostUSD = u.CostUSD
	}
	if u.Input != nil {
		rec.Input = u.Input
	}
	if u.Output != nil {
		rec.Output = *u.Output
	}
	if u.OutputObject != nil {
		rec.OutputObject = u.OutputObject
	}
	if u.ToolCalls != nil {
		rec.ToolCalls = u.ToolCalls
	}
	if u.FinishReason != nil {
		rec.FinishReason = *u.FinishReason
	}
	if u.Settings != nil {
		rec.Settings = u.Settings
	}
	if u.TraceName != nil {
		rec.TraceName = *u.TraceName
	}
	if u.SessionID != nil {
		rec.SessionID = *u.SessionID
	}
	if u.SessionName != nil {
		rec.SessionName = *u.SessionName
	}
	if u.UserID != nil {
		rec.UserID = *u.UserID
	}
	if u.DatasetRunID != nil {
		rec.DatasetRunID = *u.DatasetRunID
	}
	if u.DatasetRunName != nil {
		rec.DatasetRunName = *u.DatasetRunName
	}
	if u.DatasetItemName != nil {
		rec.DatasetItemName = *u.DatasetItemName
	}
	if u.DatasetExpectedOutput != nil {
		rec.DatasetExpectedOutput = *u.DatasetExpectedOutput
	}
	if u.PromptName != nil {
		rec.PromptName = *u.PromptName
	}
	if u.Metadata != nil {
		if rec.Metadata == nil {
			rec.Metadata = make(map[string]any, len(u.Metadata))
		}
		for k, v := range u.Metadata {
			rec.Metadata[k] = v
		}
	}
}
