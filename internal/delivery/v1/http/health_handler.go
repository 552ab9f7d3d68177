package http

import (
	"net/http"

	"github.com/intecsa-dev/productos-backend/pkg/logger"
)

// Pinger — тривиальная проверка доступности базы данных.
type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	db     Pinger
	logger logger.Logger
}

func NewHealthHandler(db Pinger, logger logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// estadoConexion
//
//	@Summary		Проверка соединения с БД
//	@Description	Выполняет тривиальный запрос к базе; всегда отвечает 200
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/ [get]
func (h *HealthHandler) estadoConexion(w http.ResponseWriter, r *http.Request) {
	// Ошибка соединения не транслируется в HTTP-статус:
	// маршрут всегда отвечает 200 с описанием результата.
	if err := h.db.Ping(); err != nil {
		h.logger.Warnf("database ping failed: %s", err.Error())
		WriteSuccess(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{"conexion": "Exitosa"})
}
