// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/allfeat/internal/adapters/config"
	_ "go.trai.ch/allfeat/internal/adapters/logger"
	_ "go.trai.ch/allfeat/internal/adapters/manifest"
	_ "go.trai.ch/allfeat/internal/adapters/report"
	_ "go.trai.ch/allfeat/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/allfeat/internal/app"
)
