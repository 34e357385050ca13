package expense

import (
	"github.com/tailorsoft/atelier/internal/expense/repository"
	"github.com/tailorsoft/atelier/internal/expense/service"
	"go.uber.org/fx"
)

var Module = fx.Module("expense.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
