package app

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgconfig"
	"github.com/ozkangu/travel-mcp/internal/pkg/pkgjwt"
	"github.com/ozkangu/travel-mcp/internal/pkg/pkgrouter"
	"github.com/ozkangu/travel-mcp/internal/pkg/pkguid"
	"github.com/rs/cors"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
	a.transport = transportHTTP
	if strings.EqualFold(cfg.GetString("app.transport"), transportStdio) {
		a.transport = transportStdio
	}
}

func (a *App) initHTTPServer() {
	a.uuid = pkguid.NewUUID()
	a.router = pkgrouter.NewRouter(a.uuid)

	a.router.Use(pkgrouter.RateLimit(
		a.config.GetInt("app.server.rate_limit.max_requests"),
		time.Duration(a.config.GetInt("app.server.rate_limit.window_ms"))*time.Millisecond,
		"/health",
	))
	if secret := a.config.GetString("app.auth.jwt_secret"); secret != "" {
		a.router.Use(pkgjwt.NewVerifier(secret).Middleware("/health"))
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{pkgrouter.HeaderRequestID},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              serverAddress(a.config),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func serverAddress(cfg pkgconfig.Config) string {
	host := cfg.GetString("app.server.host")
	port := cfg.GetString("app.server.port")
	if port == "" {
		port = "3000"
	}
	return net.JoinHostPort(host, port)
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
