package main

import (
	"os"

	"github.com/intecsa-dev/productos-backend/internal/app"
	config "github.com/intecsa-dev/productos-backend/internal/cfg"
	"github.com/intecsa-dev/productos-backend/pkg/logger"
)

//	@title			API de Gestión de Productos
//	@version		1.0
//	@description	CRUD de productos sobre procedimientos almacenados

//	@host		localhost:8080
//	@BasePath	/
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
