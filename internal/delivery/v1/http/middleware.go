package http

import (
	"net/http"

	"github.com/google/uuid"
)

// requestID проставляет X-Request-ID входящим запросам.
// Переданный клиентом идентификатор сохраняется, отсутствующий — генерируется.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
