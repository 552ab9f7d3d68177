package http

import (
	"fmt"
	"net/http"

	"github.com/intecsa-dev/productos-backend/internal/usecase"
	"github.com/intecsa-dev/productos-backend/pkg/e"
	"github.com/intecsa-dev/productos-backend/pkg/logger"
)

type ProductoHandler struct {
	productoUsecase usecase.ProductoUC
	logger          logger.Logger
}

func NewProductoHandler(productoUsecase usecase.ProductoUC, logger logger.Logger) *ProductoHandler {
	return &ProductoHandler{productoUsecase: productoUsecase, logger: logger}
}

// listarProductos
//
//	@Summary		Список товаров
//	@Description	Возвращает все товары каталога
//	@Tags			productos
//	@Produce		json
//	@Success		200	{array}		ProductoResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/productos/ [get]
func (p *ProductoHandler) listarProductos(w http.ResponseWriter, r *http.Request) {
	productos, err := p.productoUsecase.Listar(r.Context())
	if err != nil {
		p.logger.Errorf(err, "failed to list productos")
		WriteError(w, e.Wrap("Error al listar productos", err))
		return
	}

	result := make([]*ProductoResponse, 0, len(productos))
	for _, producto := range productos {
		result = append(result, NewProductoResponse(producto))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// crearProducto
//
//	@Summary		Создание товара
//	@Description	Создаёт товар; id и fechaRegistro назначает база данных
//	@Tags			productos
//	@Accept			json
//	@Produce		json
//	@Param			producto	body		ProductoRequest	true	"Данные товара"
//	@Success		201			{object}	ProductoResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/productos/ [post]
func (p *ProductoHandler) crearProducto(w http.ResponseWriter, r *http.Request) {
	req, err := parseProductoBody(r)
	if err != nil {
		p.logger.Warnf("%d invalid create body: %s", http.StatusInternalServerError, err.Error())
		WriteError(w, e.Wrap("Error al insertar producto", err))
		return
	}

	producto, err := p.productoUsecase.Crear(r.Context(), req)
	if err != nil {
		p.logger.Errorf(err, "failed to create producto")
		WriteError(w, e.Wrap("Error al insertar producto", err))
		return
	}

	// Вставка прошла, но строку не удалось получить обратно —
	// нарушение контракта запись/чтение, не ошибка пользовательского ввода.
	if producto == nil {
		p.logger.Errorf(e.ErrCreatedNotRetrieved, "create/read contract violation")
		WriteError(w, e.ErrCreatedNotRetrieved)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductoResponse(producto))
}

// actualizarProducto
//
//	@Summary		Обновление товара
//	@Description	Обновляет все поля товара, кроме id и fechaRegistro
//	@Tags			productos
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int				true	"ID товара"
//	@Param			producto	body		ProductoRequest	true	"Данные товара"
//	@Success		200			{object}	ProductoResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/productos/{id} [put]
func (p *ProductoHandler) actualizarProducto(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductoID(r)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	req, err := parseProductoBody(r)
	if err != nil {
		p.logger.Warnf("%d invalid update body: %s", http.StatusInternalServerError, err.Error())
		WriteError(w, e.Wrap("Error al actualizar producto", err))
		return
	}

	// Проверка наличия перед мутацией. Между проверкой и вызовом процедуры
	// конкурентное удаление возможно: окно принято и не закрывается.
	exists, err := p.productoUsecase.Existe(r.Context(), id)
	if err != nil {
		p.logger.Errorf(err, "failed to check producto %d", id)
		WriteError(w, e.Wrap("Error al actualizar producto", err))
		return
	}
	if !exists {
		WriteError(w, e.Wrap(fmt.Sprintf("producto con id %d", id), e.ErrProductoNotFound))
		return
	}

	producto, err := p.productoUsecase.Actualizar(r.Context(), id, req)
	if err != nil {
		p.logger.Errorf(err, "failed to update producto %d", id)
		WriteError(w, e.Wrap("Error al actualizar producto", err))
		return
	}

	if producto == nil {
		p.logger.Errorf(e.ErrUpdatedNotRetrieved, "update/read contract violation, id %d", id)
		WriteError(w, e.ErrUpdatedNotRetrieved)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductoResponse(producto))
}

// eliminarProducto
//
//	@Summary		Удаление товара
//	@Description	Удаляет товар без возможности восстановления
//	@Tags			productos
//	@Param			id	path	int	true	"ID товара"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/productos/{id} [delete]
func (p *ProductoHandler) eliminarProducto(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductoID(r)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	exists, err := p.productoUsecase.Existe(r.Context(), id)
	if err != nil {
		p.logger.Errorf(err, "failed to check producto %d", id)
		WriteError(w, e.Wrap("Error al eliminar producto", err))
		return
	}
	if !exists {
		WriteError(w, e.Wrap(fmt.Sprintf("producto con id %d", id), e.ErrProductoNotFound))
		return
	}

	if err := p.productoUsecase.Eliminar(r.Context(), id); err != nil {
		p.logger.Errorf(err, "failed to delete producto %d", id)
		WriteError(w, e.Wrap("Error al eliminar producto", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
