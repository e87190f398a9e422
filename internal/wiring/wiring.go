// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/weave/internal/adapters/config"
	_ "go.trai.ch/weave/internal/adapters/logger"
	_ "go.trai.ch/weave/internal/adapters/telemetry"
	_ "go.trai.ch/weave/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/weave/internal/app"
	// Register built-in plugins.
	_ "go.trai.ch/weave/internal/plugins/tracelog"
)
