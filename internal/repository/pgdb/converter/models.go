package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoModel представляет запись таблицы productos в PostgreSQL.
// precio хранится как NUMERIC(12,2); в доменную сущность он попадает
// только после явного приведения к float64.
type ProductoModel struct {
	ID            int64           `db:"id"`
	Nombre        string          `db:"nombre"`
	Descripcion   *string         `db:"descripcion"`
	Precio        decimal.Decimal `db:"precio"`
	Stock         int32           `db:"stock"`
	FechaRegistro time.Time       `db:"fecha_registro"`
}
