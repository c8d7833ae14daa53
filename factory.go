// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package genainormalizerconnector // import "github.com/agentmark-ai/genainormalizerconnector"

import (
	"context"
	"fmt"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/connector"
	"go.opentelemetry.io/collector/consumer"

	"github.com/agentmark-ai/genainormalizerconnector/internal/metadata"
	"github.com/agentmark-ai/genainormalizerconnector/pkg/normalizer"
)

// NewFactory creates a factory for the genainormalizer connector.
func NewFactory() connector.Factory {
	return connector.NewFactory(
		metadata.Type,
		createDefaultConfig,
		connector.WithTracesToLogs(createTracesToLogs, metadata.TracesToLogsStability),
	)
}

func createDefaultConfig() component.Config {
	return &Config{
		IncludeResourceAttributes: true,
		IncludeRaw:                true,
		ErrorMode:                 ErrorModeIgnore,
	}
}

func createTracesToLogs(
	_ context.Context,
	set connector.Settings,
	cfg component.Config,
	next consumer.Logs,
) (connector.Traces, error) {
	oCfg, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("invalid config type: %T", cfg)
	}
	norm := normalizer.New(
		normalizer.NewDefaultRegistry(),
		normalizer.WithLogger(set.TelemetrySettings.Logger),
	)
	return newConnector(oCfg, norm, set.TelemetrySettings.Logger, next), nil
}
