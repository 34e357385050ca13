package order

import (
	"github.com/tailorsoft/atelier/internal/order/repository"
	"github.com/tailorsoft/atelier/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
