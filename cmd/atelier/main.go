package main

import (
	"github.com/tailorsoft/atelier/internal/observability"
	"github.com/tailorsoft/atelier/internal/server"
	"github.com/tailorsoft/atelier/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		observability.Module,
		db.Module,
		server.Module,
	)
	app.Run()
}
