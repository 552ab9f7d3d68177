package usecase

// PRODUCTO USECASE

// ProductoReq — данные товара для вставки или обновления.
// Одна и та же форма аргументов у sp_insertar_producto и sp_actualizar_producto.
type ProductoReq struct {
	Nombre      string
	Descripcion *string
	Precio      float64
	Stock       int32
}

// MAPPERS

func NewProductoReq(nombre string, descripcion *string, precio float64, stock int32) *ProductoReq {
	return &ProductoReq{
		Nombre:      nombre,
		Descripcion: descripcion,
		Precio:      precio,
		Stock:       stock,
	}
}
