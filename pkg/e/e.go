package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("identificador de producto inválido")

	// 404 Not Found
	ErrProductoNotFound = fmt.Errorf("producto no encontrado")

	// 500: мутация в БД прошла, но повторное чтение не вернуло строку.
	// Нарушение контракта запись/чтение, логируется отдельно от прочих ошибок.
	ErrCreatedNotRetrieved = fmt.Errorf("no se pudo obtener el producto creado")
	ErrUpdatedNotRetrieved = fmt.Errorf("no se pudo obtener el producto actualizado")

	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
