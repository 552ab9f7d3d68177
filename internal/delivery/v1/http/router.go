package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/intecsa-dev/productos-backend/docs" // Импорт сгенерированных файлов
	"github.com/intecsa-dev/productos-backend/internal/usecase"
	"github.com/intecsa-dev/productos-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductoUC, db Pinger) {
	r.router.Use(requestID)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	healthHandler := NewHealthHandler(db, r.logger)
	r.router.Get("/", healthHandler.estadoConexion)

	prHandler := NewProductoHandler(prUC, r.logger)
	registerProductoRoutes(r.router, prHandler)
}

func registerProductoRoutes(router chi.Router, prHandler *ProductoHandler) {
	router.Route("/productos", func(pr chi.Router) {
		pr.Get("/", prHandler.listarProductos)
		pr.Post("/", prHandler.crearProducto)
		pr.Put("/{id}", prHandler.actualizarProducto)
		pr.Delete("/{id}", prHandler.eliminarProducto)
	})
}
