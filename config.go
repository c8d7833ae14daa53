// Copyright The AgentMark Authors
// SPDX-License-Identifier: Apache-2.0

package genainormalizerconnector // import "github.com/agentmark-ai/genainormalizerconnector"

import (
	"fmt"

	"go.opentelemetry.io/collector/component"
	"go.uber.org/multierr"
)

// Error-handling modes for spans that fail to decode.
const (
	ErrorModeIgnore    = "ignore"
	ErrorModePropagate = "propagate"
)

// Config controls what the connector emits for each normalized span.
type Config struct {
	// IncludeResourceAttributes keeps the resource attribute map on the
	// emitted record.
	IncludeResourceAttributes bool `mapstructure:"include_resource_attributes"`

	// IncludeRaw keeps the raw span attributes, events and links on the
	// emitted record. Disable to cut record size when the viewer only
	// needs the normalized fields.
	IncludeRaw bool `mapstructure:"include_raw"`

	// ErrorMode decides whether a span with a fatal decode error fails
	// the whole consume call ("propagate") or is dropped with a warning
	// ("ignore").
	ErrorMode string `mapstructure:"error_mode"`

	_ struct{}
}

var _ component.Config = (*Config)(nil)

func (c *Config) Validate() error {
	var errs error
	switch c.ErrorMode {
	case ErrorModeIgnore, ErrorModePropagate:
	default:
		errs = multierr.Append(errs, fmt.Errorf("error_mode must be %q or %q, got %q",
			ErrorModeIgnore, ErrorModePropagate, c.ErrorMode))
	}
	return errs
}
