package app

import (
	"log/slog"
	"os"

	"github.com/ozkangu/travel-mcp/internal/travel"
)

func (a *App) initModules() {
	if !a.config.GetBool("modules.travel.enabled") {
		slog.Error("module travel is disabled, nothing to serve")
		os.Exit(1)
	}

	dep := travel.Dependency{Config: a.config}
	if a.transport == transportHTTP {
		dep.Router = a.router
	}

	m, err := travel.New(dep)
	if err != nil {
		slog.Error("failed to init module travel", "error", err)
		os.Exit(1)
	}
	a.travel = m
}
