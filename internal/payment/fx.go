package payment

import (
	"github.com/tailorsoft/atelier/internal/payment/repository"
	"github.com/tailorsoft/atelier/internal/payment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
