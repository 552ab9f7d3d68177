package domain

import "time"

// Producto описывает товар каталога.
// ID и FechaRegistro назначаются базой данных при вставке и далее не меняются.
type Producto struct {
	ID            int64
	Nombre        string
	Descripcion   *string // может отсутствовать (NULL)
	Precio        float64
	Stock         int32
	FechaRegistro time.Time
}

func NewProducto(nombre string, descripcion *string, precio float64, stock int32) *Producto {
	return &Producto{
		Nombre:      nombre,
		Descripcion: descripcion,
		Precio:      precio,
		Stock:       stock,
	}
}
