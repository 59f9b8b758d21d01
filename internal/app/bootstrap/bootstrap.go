package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	bannerregistry "herobanner/contexts/banner-program/banner-registry"
	gormadapter "herobanner/contexts/banner-program/banner-registry/adapters/gorm"
	importservice "herobanner/contexts/banner-program/import-service"
	notificationservice "herobanner/contexts/banner-program/notification-service"
	smtpadapter "herobanner/contexts/banner-program/notification-service/adapters/smtp"
	"herobanner/contexts/banner-program/notification-service/adapters/textfile"
	notifports "herobanner/contexts/banner-program/notification-service/ports"
	"herobanner/internal/platform/config"
	"herobanner/internal/platform/db"
	"herobanner/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

// App bundles the wired modules for a process; the CLI and the API server
// both build on it.
type App struct {
	Config        config.Config
	Logger        *slog.Logger
	Conn          *gorm.DB
	Imports       importservice.Module
	Registry      bannerregistry.Module
	Notifications notificationservice.Module
}

type APIApp struct {
	app    *App
	server *httpserver.Server
}

func Build(process string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", process)

	conn, err := db.Connect(db.Options{Path: cfg.DBPath, PostgresDSN: cfg.PostgresDSN})
	if err != nil {
		return nil, err
	}
	if err := gormadapter.Migrate(conn); err != nil {
		return nil, err
	}

	registryModule := bannerregistry.NewModule(bannerregistry.Dependencies{
		Repository: gormadapter.NewRepository(conn, logger),
		Clock:      gormadapter.SystemClock{},
		IDGen:      gormadapter.UUIDGenerator{},
		Logger:     logger,
	})

	importModule := importservice.NewModule(importservice.Dependencies{
		Registry: RegistryUpserter(registryModule.Service),
		Logger:   logger,
	})

	var mailer notifports.Mailer
	if strings.TrimSpace(cfg.SMTPHost) != "" {
		mailer = smtpadapter.Mailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}
	}
	notificationModule := notificationservice.NewModule(notificationservice.Dependencies{
		Registry: RegistryGateway(registryModule.Service),
		Outbox:   textfile.NewOutbox(cfg.NotificationsPath),
		Mailer:   mailer,
		Clock:    gormadapter.SystemClock{},
		IDGen:    gormadapter.UUIDGenerator{},
		Logger:   logger,
	})

	return &App{
		Config:        cfg,
		Logger:        logger,
		Conn:          conn,
		Imports:       importModule,
		Registry:      registryModule,
		Notifications: notificationModule,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.Conn)
}

func BuildAPI() (*APIApp, error) {
	app, err := Build("api")
	if err != nil {
		return nil, err
	}
	server := httpserver.New(
		app.Imports,
		app.Registry,
		app.Notifications,
		app.Logger,
		normalizeAddr(app.Config.HTTPPort),
	)
	return &APIApp{app: app, server: server}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	a.app.Logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return a.server.Start()
}

func (a *APIApp) Close() error {
	return a.app.Close()
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
