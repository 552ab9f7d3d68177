package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/intecsa-dev/productos-backend/internal/domain"
	"github.com/intecsa-dev/productos-backend/internal/usecase"
	"github.com/intecsa-dev/productos-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductoRequest — тело запроса POST/PUT: descripcion может быть null.
type ProductoRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Precio      float64 `json:"precio"`
	Stock       int32   `json:"stock"`
}

// ProductoResponse — форма записи товара в ответах API.
type ProductoResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	Precio        float64   `json:"precio"`
	Stock         int32     `json:"stock"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func NewProductoResponse(producto *domain.Producto) *ProductoResponse {
	return &ProductoResponse{
		ID:            producto.ID,
		Nombre:        producto.Nombre,
		Descripcion:   producto.Descripcion,
		Precio:        producto.Precio,
		Stock:         producto.Stock,
		FechaRegistro: producto.FechaRegistro,
	}
}

// ToHTTPResponse отображает ошибку в статус и сообщение ответа.
// "Не найдено" проверяется первым и никогда не схлопывается в 500;
// все прочие ошибки отдаются как 500 с исходным текстом.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductoNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseProductoID извлекает идентификатор товара из пути запроса.
func parseProductoID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, e.Wrap(raw, e.ErrStatusBadRequest)
	}

	return id, nil
}

// parseProductoBody декодирует тело запроса в аргументы сервисного слоя.
func parseProductoBody(r *http.Request) (*usecase.ProductoReq, error) {
	var body ProductoRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewProductoReq(body.Nombre, body.Descripcion, body.Precio, body.Stock), nil
}
