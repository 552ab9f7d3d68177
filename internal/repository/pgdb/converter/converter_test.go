package converter

import (
	"testing"
	"time"

	"github.com/intecsa-dev/productos-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToEntity(t *testing.T) {
	conv := NewProductoConverterImpl()

	precio, err := decimal.NewFromString("9.99")
	require.NoError(t, err)

	descripcion := "para pruebas"
	registrado := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	entity := conv.ToEntity(&ProductoModel{
		ID:            7,
		Nombre:        "Widget",
		Descripcion:   &descripcion,
		Precio:        precio,
		Stock:         10,
		FechaRegistro: registrado,
	})

	require.Equal(t, int64(7), entity.ID)
	require.Equal(t, "Widget", entity.Nombre)
	require.Equal(t, &descripcion, entity.Descripcion)
	// NUMERIC(12,2) приводится к float64 без потери двух знаков.
	require.Equal(t, 9.99, entity.Precio)
	require.Equal(t, int32(10), entity.Stock)
	require.Equal(t, registrado, entity.FechaRegistro)
}

func TestToEntity_DescripcionNula(t *testing.T) {
	conv := NewProductoConverterImpl()

	entity := conv.ToEntity(&ProductoModel{
		ID:     1,
		Nombre: "Widget",
		Precio: decimal.NewFromInt(5),
	})

	require.Nil(t, entity.Descripcion)
	require.Equal(t, 5.0, entity.Precio)
}

func TestToModel(t *testing.T) {
	conv := NewProductoConverterImpl()

	model := conv.ToModel(&domain.Producto{
		ID:     7,
		Nombre: "Widget",
		Precio: 9.99,
		Stock:  10,
	})

	require.Equal(t, int64(7), model.ID)
	require.True(t, model.Precio.Equal(decimal.NewFromFloat(9.99)))
}

func TestNilRoundtrip(t *testing.T) {
	conv := NewProductoConverterImpl()

	require.Nil(t, conv.ToEntity(nil))
	require.Nil(t, conv.ToModel(nil))
}
