package usecase

import (
	"context"

	"github.com/intecsa-dev/productos-backend/internal/domain"
)

// ProductoRepository — доступ к товарам через хранимые процедуры PostgreSQL.
// Insertar и Actualizar возвращают (nil, nil), если после мутации строку
// не удалось перечитать; интерпретация этого случая — на вызывающей стороне.
type ProductoRepository interface {
	Listar(ctx context.Context) ([]*domain.Producto, error)
	Insertar(ctx context.Context, req *ProductoReq) (*domain.Producto, error)
	Actualizar(ctx context.Context, id int64, req *ProductoReq) (*domain.Producto, error)
	Eliminar(ctx context.Context, id int64) error
	ObtenerPorID(ctx context.Context, id int64) (*domain.Producto, error)
	ExistePorID(ctx context.Context, id int64) (bool, error)
}
