// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package metadata // import "github.com/agentmark-ai/genainormalizerconnector/internal/metadata"

import "go.opentelemetry.io/collector/component"

var (
	Type      = component.MustNewType("genainormalizer")
	ScopeName = "github.com/agentmark-ai/genainormalizerconnector"
)

const (
	TracesToLogsStability = component.StabilityLevelAlpha
)
