package converter

import (
	"github.com/intecsa-dev/productos-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductoConverter преобразует сущности Producto между domain и моделью PostgreSQL.
type ProductoConverter interface {
	ToModel(entity *domain.Producto) *ProductoModel
	ToEntity(model *ProductoModel) *domain.Producto
}

type ProductoConverterImpl struct{}

func NewProductoConverterImpl() *ProductoConverterImpl {
	return &ProductoConverterImpl{}
}

func (c *ProductoConverterImpl) ToModel(entity *domain.Producto) *ProductoModel {
	if entity == nil {
		return nil
	}
	return &ProductoModel{
		ID:            entity.ID,
		Nombre:        entity.Nombre,
		Descripcion:   entity.Descripcion,
		Precio:        decimal.NewFromFloat(entity.Precio),
		Stock:         entity.Stock,
		FechaRegistro: entity.FechaRegistro,
	}
}

// ToEntity нормализует строку из БД: NUMERIC-цена явно приводится к float64.
func (c *ProductoConverterImpl) ToEntity(model *ProductoModel) *domain.Producto {
	if model == nil {
		return nil
	}
	return &domain.Producto{
		ID:            model.ID,
		Nombre:        model.Nombre,
		Descripcion:   model.Descripcion,
		Precio:        model.Precio.InexactFloat64(),
		Stock:         model.Stock,
		FechaRegistro: model.FechaRegistro,
	}
}
