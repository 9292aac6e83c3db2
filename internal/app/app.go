package app

import (
	"context"
	"net/http"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgconfig"
	"github.com/ozkangu/travel-mcp/internal/pkg/pkglog"
	"github.com/ozkangu/travel-mcp/internal/pkg/pkgrouter"
	"github.com/ozkangu/travel-mcp/internal/pkg/pkguid"
	"github.com/ozkangu/travel-mcp/internal/travel"
)

const (
	transportHTTP  = "http"
	transportStdio = "stdio"
)

type App struct {
	config     pkgconfig.Config
	transport  string
	uuid       pkguid.StringID
	router     *pkgrouter.Router
	httpServer *http.Server
	travel     *travel.Module
	closerFn   map[string]func(context.Context) error
}

func New() *App {
	app := &App{}
	pkglog.InitLogging()
	app.initConfig()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()
	return app
}
