package usecase

import (
	"context"

	"github.com/intecsa-dev/productos-backend/internal/domain"
)

// ProductoUC — операции сервисного слоя над товарами.
type ProductoUC interface {
	Listar(ctx context.Context) ([]*domain.Producto, error)
	Crear(ctx context.Context, req *ProductoReq) (*domain.Producto, error)
	Actualizar(ctx context.Context, id int64, req *ProductoReq) (*domain.Producto, error)
	Eliminar(ctx context.Context, id int64) error
	Obtener(ctx context.Context, id int64) (*domain.Producto, error)
	Existe(ctx context.Context, id int64) (bool, error)
}
