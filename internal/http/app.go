// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"contact_phone_backend/platform/config"
	"contact_phone_backend/platform/logger"
)

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP settings only).
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Modules contains all HTTP-facing modules.
	Modules []Module
}
