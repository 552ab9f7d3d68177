package usecase

import (
	"context"

	"github.com/intecsa-dev/productos-backend/internal/domain"
	"github.com/intecsa-dev/productos-backend/pkg/logger"
)

// ProductoUseCase — сервисный слой над товарами.
// Бизнес-правил здесь нет: каждый метод передаёт аргументы репозиторию
// без изменений и возвращает его результат как есть. Слой существует как
// точка расширения между HTTP-обвязкой и доступом к данным.
type ProductoUseCase struct {
	productoRepo ProductoRepository
	logger       logger.Logger
}

func NewProductoUC(productoRepo ProductoRepository, logger logger.Logger) *ProductoUseCase {
	return &ProductoUseCase{
		productoRepo: productoRepo,
		logger:       logger,
	}
}

// Listar возвращает все товары.
func (p *ProductoUseCase) Listar(ctx context.Context) ([]*domain.Producto, error) {
	return p.productoRepo.Listar(ctx)
}

// Crear создаёт новый товар.
func (p *ProductoUseCase) Crear(ctx context.Context, req *ProductoReq) (*domain.Producto, error) {
	return p.productoRepo.Insertar(ctx, req)
}

// Actualizar обновляет существующий товар.
func (p *ProductoUseCase) Actualizar(ctx context.Context, id int64, req *ProductoReq) (*domain.Producto, error) {
	return p.productoRepo.Actualizar(ctx, id, req)
}

// Eliminar удаляет товар.
func (p *ProductoUseCase) Eliminar(ctx context.Context, id int64) error {
	return p.productoRepo.Eliminar(ctx, id)
}

// Obtener возвращает товар по идентификатору.
func (p *ProductoUseCase) Obtener(ctx context.Context, id int64) (*domain.Producto, error) {
	return p.productoRepo.ObtenerPorID(ctx, id)
}

// Existe проверяет наличие товара с данным идентификатором.
func (p *ProductoUseCase) Existe(ctx context.Context, id int64) (bool, error) {
	return p.productoRepo.ExistePorID(ctx, id)
}
