package importservice

import (
	"log/slog"

	httpadapter "herobanner/contexts/banner-program/import-service/adapters/http"
	"herobanner/contexts/banner-program/import-service/application"
	"herobanner/contexts/banner-program/import-service/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
}

type Dependencies struct {
	Registry ports.BannerUpserter
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Registry: deps.Registry,
		Logger:   deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}
