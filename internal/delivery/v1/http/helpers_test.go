package http_test

import (
	"fmt"
	"net/http"
	"testing"

	v1http "github.com/intecsa-dev/productos-backend/internal/delivery/v1/http"
	"github.com/intecsa-dev/productos-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	// Обёрнутый not-found остаётся 404 и не схлопывается в 500.
	code, msg := v1http.ToHTTPResponse(e.Wrap("producto con id 7", e.ErrProductoNotFound))
	require.Equal(t, http.StatusNotFound, code)
	require.Contains(t, msg, "producto con id 7")
	require.Contains(t, msg, "no encontrado")

	code, _ = v1http.ToHTTPResponse(e.Wrap("abc", e.ErrStatusBadRequest))
	require.Equal(t, http.StatusBadRequest, code)

	code, msg = v1http.ToHTTPResponse(e.Wrap("Error al listar productos", fmt.Errorf("broken pipe")))
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "Error al listar productos: broken pipe", msg)

	code, _ = v1http.ToHTTPResponse(e.ErrCreatedNotRetrieved)
	require.Equal(t, http.StatusInternalServerError, code)
}
