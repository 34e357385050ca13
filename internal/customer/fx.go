package customer

import (
	"github.com/tailorsoft/atelier/internal/customer/repository"
	"github.com/tailorsoft/atelier/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
