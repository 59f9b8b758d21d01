package notificationservice

import (
	"log/slog"

	httpadapter "herobanner/contexts/banner-program/notification-service/adapters/http"
	"herobanner/contexts/banner-program/notification-service/adapters/memory"
	"herobanner/contexts/banner-program/notification-service/application"
	"herobanner/contexts/banner-program/notification-service/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Registry ports.Registry
	Outbox   ports.OutboxWriter
	Mailer   ports.Mailer
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Registry: deps.Registry,
		Outbox:   deps.Outbox,
		Mailer:   deps.Mailer,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

// NewInMemoryModule wires the memory outbox and mailer around the given
// registry gateway; tests and the default CLI use it.
func NewInMemoryModule(registry ports.Registry, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Registry: registry,
		Outbox:   store,
		Mailer:   store,
		Clock:    store,
		IDGen:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
