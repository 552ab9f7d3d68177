package pgdb

import (
	"context"
	"errors"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/intecsa-dev/productos-backend/internal/domain"
	"github.com/intecsa-dev/productos-backend/internal/repository/pgdb/converter"
	"github.com/intecsa-dev/productos-backend/internal/usecase"
	"github.com/intecsa-dev/productos-backend/pkg/e"
	"github.com/intecsa-dev/productos-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productoColumns = "id, nombre, descripcion, precio, stock, fecha_registro"

// ProductoRepo реализует репозиторий товаров поверх PostgreSQL.
// Все мутации и листинг идут через хранимые процедуры; прямые SELECT
// используются только для перечитывания состояния и проверки наличия.
type ProductoRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductoConverter
}

func NewProductoRepo(pool *pgxpool.Pool, conv converter.ProductoConverter) *ProductoRepo {
	return &ProductoRepo{
		pool: pool,
		conv: conv,
	}
}

// querier покрывает pgxpool.Pool и pgx.Tx для чтения одной строки.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Listar возвращает все товары через sp_listar_productos.
func (p *ProductoRepo) Listar(ctx context.Context) ([]*domain.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM sp_listar_productos()`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]*domain.Producto, 0)
	for rows.Next() {
		var model converter.ProductoModel
		if err := rows.Scan(
			&model.ID, &model.Nombre, &model.Descripcion,
			&model.Precio, &model.Stock, &model.FechaRegistro,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Insertar создаёт товар через sp_insertar_producto.
// Вставка и чтение результата выполняются в одной транзакции: если
// процедура не вернула строку, последняя вставленная строка читается
// до коммита и не может оказаться чужой. Если строку получить не
// удалось, возвращается (nil, nil) — интерпретация на вызывающей стороне.
func (p *ProductoRepo) Insertar(ctx context.Context, req *usecase.ProductoReq) (*domain.Producto, error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.pool)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	producto, err := p.insertar(ctx, req)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if producto == nil {
		producto, err = p.ultimoInsertado(ctx)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return producto, nil
}

// Actualizar обновляет товар через sp_actualizar_producto и перечитывает
// состояние отдельным SELECT в той же транзакции. Результат самой
// процедуры игнорируется: возвращаемая запись всегда отражает
// закоммиченное состояние.
func (p *ProductoRepo) Actualizar(ctx context.Context, id int64, req *usecase.ProductoReq) (*domain.Producto, error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.pool)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err := p.actualizar(ctx, id, req); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	pgxTx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	producto, err := p.leerPorID(ctx, pgxTx, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return producto, nil
}

// Eliminar удаляет товар через sp_eliminar_producto.
// Факт удаления строки здесь не проверяется: наличие товара проверяет
// вызывающая сторона до мутации.
func (p *ProductoRepo) Eliminar(ctx context.Context, id int64) error {
	query := `SELECT sp_eliminar_producto($1)`

	if _, err := p.pool.Exec(ctx, query, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ObtenerPorID возвращает товар по идентификатору или (nil, nil), если его нет.
func (p *ProductoRepo) ObtenerPorID(ctx context.Context, id int64) (*domain.Producto, error) {
	producto, err := p.leerPorID(ctx, p.pool, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return producto, nil
}

// ExistePorID проверяет наличие товара лёгким запросом только по колонке id.
func (p *ProductoRepo) ExistePorID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT id FROM productos WHERE id = $1`

	var found int64
	err := p.pool.QueryRow(ctx, query, id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return true, nil
}

// insertar вызывает sp_insertar_producto в текущей транзакции.
// Возвращает (nil, nil), если процедура не вернула строку.
func (p *ProductoRepo) insertar(ctx context.Context, req *usecase.ProductoReq) (*domain.Producto, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + productoColumns + ` FROM sp_insertar_producto($1, $2, $3, $4)`

	row := tx.QueryRow(ctx, query, req.Nombre, req.Descripcion, req.Precio, req.Stock)
	return p.scanProducto(row)
}

// ultimoInsertado читает последнюю вставленную строку (наибольший id)
// в текущей транзакции. Запасной путь для процедур, не возвращающих строку.
func (p *ProductoRepo) ultimoInsertado(ctx context.Context) (*domain.Producto, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY id DESC LIMIT 1`

	row := tx.QueryRow(ctx, query)
	return p.scanProducto(row)
}

// actualizar вызывает sp_actualizar_producto в текущей транзакции.
func (p *ProductoRepo) actualizar(ctx context.Context, id int64, req *usecase.ProductoReq) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return err
	}

	query := `SELECT sp_actualizar_producto($1, $2, $3, $4, $5)`

	_, err = tx.Exec(ctx, query, id, req.Nombre, req.Descripcion, req.Precio, req.Stock)
	return err
}

func (p *ProductoRepo) leerPorID(ctx context.Context, q querier, id int64) (*domain.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`

	row := q.QueryRow(ctx, query, id)
	return p.scanProducto(row)
}

// scanProducto нормализует строку результата в доменную сущность.
// Отсутствие строки не ошибка: возвращается (nil, nil).
func (p *ProductoRepo) scanProducto(row pgx.Row) (*domain.Producto, error) {
	var model converter.ProductoModel
	err := row.Scan(
		&model.ID, &model.Nombre, &model.Descripcion,
		&model.Precio, &model.Stock, &model.FechaRegistro,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p.conv.ToEntity(&model), nil
}
