// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

// Package genainormalizerconnector emits one canonical normalized record
// per trace span onto a logs pipeline, so storage and the trace viewer can
// consume GenAI spans without knowing which SDK produced them.
package genainormalizerconnector // import "github.com/agentmark-ai/genainormalizerconnector"

import (
	"context"
	"encoding/hex"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/consumer"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/plog"
	"go.opentelemetry.io/collector/pdata/ptrace"
	"go.uber.org/zap"

	"github.com/agentmark-ai/genainormalizerconnector/internal/metadata"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/model"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/normalizer"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type normalize struct {
	config       *Config
	normalizer   *normalizer.Normalizer
	logger       *zap.Logger
	logsConsumer consumer.Logs
	component.StartFunc
	component.ShutdownFunc
}

func newConnector(cfg *Config, norm *normalizer.Normalizer, logger *zap.Logger, next consumer.Logs) *normalize {
	return &normalize{
		config:       cfg,
		normalizer:   norm,
		logger:       logger,
		logsConsumer: next,
	}
}

func (c *normalize) Capabilities() consumer.Capabilities {
	return consumer.Capabilities{MutatesData: false}
}

func (c *normalize) ConsumeTraces(ctx context.Context, td ptrace.Traces) error {
	records, err := c.normalizer.NormalizeTraces(td)
	if err != nil {
		if c.config.ErrorMode == ErrorModePropagate {
			return err
		}
		c.logger.Warn("some spans failed to normalize", zap.Error(err))
	}
	if len(records) == 0 {
		return nil
	}

	logs := plog.NewLogs()
	scopeLogs := logs.ResourceLogs().AppendEmpty().ScopeLogs().AppendEmpty()
	scopeLogs.Scope().SetName(metadata.ScopeName)
	for i := range records {
		if err := c.appendRecord(&records[i], scopeLogs.LogRecords().AppendEmpty()); err != nil {
			c.logger.Warn("dropping unencodable record",
				zap.String("span_id", records[i].SpanID), zap.Error(err))
		}
	}
	return c.logsConsumer.ConsumeLogs(ctx, logs)
}

func (c *normalize) appendRecord(record *model.NormalizedSpan, logRecord plog.LogRecord) error {
	if !c.config.IncludeResourceAttributes {
		record.ResourceAttributes = nil
	}
	if !c.config.IncludeRaw {
		record.Attributes = nil
		record.Events = nil
		record.Links = nil
	}

	logRecord.SetTimestamp(pcommon.Timestamp(record.EndTime * 1e6))
	logRecord.Attributes().PutStr("genai.span.type", string(record.Type))
	if traceID, err := hex.DecodeString(record.TraceID); err == nil && len(traceID) == 16 {
		logRecord.SetTraceID(pcommon.TraceID(traceID))
	}
	if spanID, err := hex.DecodeString(record.SpanID); err == nil && len(spanID) == 8 {
		logRecord.SetSpanID(pcommon.SpanID(spanID))
	}

	// Round-trip through the record's JSON form so the log body matches
	// the viewer contract exactly, camelCase names included.
	encoded, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var body map[string]any
	if err := json.Unmarshal(encoded, &body); err != nil {
		return err
	}
	return logRecord.Body().SetEmptyMap().FromRaw(body)
}
