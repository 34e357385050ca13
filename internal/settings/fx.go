package settings

import (
	"github.com/tailorsoft/atelier/internal/settings/repository"
	"github.com/tailorsoft/atelier/internal/settings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
