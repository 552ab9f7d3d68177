package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/intecsa-dev/productos-backend/internal/domain"
	"github.com/intecsa-dev/productos-backend/internal/usecase"
	"github.com/intecsa-dev/productos-backend/pkg/logger"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductoRepository is a mock implementation of usecase.ProductoRepository
type MockProductoRepository struct {
	mock.Mock
}

func (m *MockProductoRepository) Listar(ctx context.Context) ([]*domain.Producto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Producto), args.Error(1)
}

func (m *MockProductoRepository) Insertar(ctx context.Context, req *usecase.ProductoReq) (*domain.Producto, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producto), args.Error(1)
}

func (m *MockProductoRepository) Actualizar(ctx context.Context, id int64, req *usecase.ProductoReq) (*domain.Producto, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producto), args.Error(1)
}

func (m *MockProductoRepository) Eliminar(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductoRepository) ObtenerPorID(ctx context.Context, id int64) (*domain.Producto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producto), args.Error(1)
}

func (m *MockProductoRepository) ExistePorID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newUC(repo usecase.ProductoRepository) *usecase.ProductoUseCase {
	return usecase.NewProductoUC(repo, logger.NewSlogLogger())
}

func strPtr(s string) *string { return &s }

func TestProductoUseCase_Listar(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	uc := newUC(mockRepo)
	ctx := context.Background()

	expected := []*domain.Producto{
		{ID: 1, Nombre: "Teclado", Precio: 49.90, Stock: 12, FechaRegistro: time.Now()},
		{ID: 2, Nombre: "Monitor", Descripcion: strPtr("27 pulgadas"), Precio: 199.99, Stock: 3, FechaRegistro: time.Now()},
	}

	mockRepo.On("Listar", ctx).Return(expected, nil).Once()

	productos, err := uc.Listar(ctx)
	require.NoError(t, err)
	require.Equal(t, expected, productos)
	mockRepo.AssertExpectations(t)
}

func TestProductoUseCase_Listar_Error(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	uc := newUC(mockRepo)
	ctx := context.Background()

	repoErr := fmt.Errorf("connection refused")
	mockRepo.On("Listar", ctx).Return(nil, repoErr).Once()

	productos, err := uc.Listar(ctx)
	require.Nil(t, productos)
	// Ошибка репозитория пробрасывается без изменений.
	require.Equal(t, repoErr, err)
	mockRepo.AssertExpectations(t)
}

func TestProductoUseCase_Crear(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	uc := newUC(mockRepo)
	ctx := context.Background()

	req := usecase.NewProductoReq("Widget", nil, 9.99, 10)
	created := &domain.Producto{ID: 7, Nombre: "Widget", Precio: 9.99, Stock: 10, FechaRegistro: time.Now()}

	// Аргументы уходят в репозиторий тем же указателем: слой ничего не меняет.
	mockRepo.On("Insertar", ctx, req).Return(created, nil).Once()

	producto, err := uc.Crear(ctx, req)
	require.NoError(t, err)
	require.Equal(t, created, producto)
	mockRepo.AssertExpectations(t)
}

func TestProductoUseCase_Crear_SinFilaRecuperada(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	uc := newUC(mockRepo)
	ctx := context.Background()

	req := usecase.NewProductoReq("Widget", nil, 9.99, 10)
	mockRepo.On("Insertar", ctx, req).Return(nil, nil).Once()

	producto, err := uc.Crear(ctx, req)
	require.NoError(t, err)
	require.Nil(t, producto)
	mockRepo.AssertExpectations(t)
}

func TestProductoUseCase_Actualizar(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	uc := newUC(mockRepo)
	ctx := context.Background()

	req := usecase.NewProductoReq("Widget v2", strPtr("rev B"), 12.50, 4)
	updated := &domain.Producto{ID: 7, Nombre: "Widget v2", Descripcion: strPtr("rev B"), Precio: 12.50, Stock: 4}

	mockRepo.On("Actualizar", ctx, int64(7), req).Return(updated, nil).Once()

	producto, err := uc.Actualizar(ctx, 7, req)
	require.NoError(t, err)
	require.Equal(t, updated, producto)
	mockRepo.AssertExpectations(t)
}

func TestProductoUseCase_Eliminar(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	uc := newUC(mockRepo)
	ctx := context.Background()

	mockRepo.On("Eliminar", ctx, int64(7)).Return(nil).Once()
	require.NoError(t, uc.Eliminar(ctx, 7))

	repoErr := fmt.Errorf("tuple concurrently deleted")
	mockRepo.On("Eliminar", ctx, int64(8)).Return(repoErr).Once()
	require.Equal(t, repoErr, uc.Eliminar(ctx, 8))

	mockRepo.AssertExpectations(t)
}

func TestProductoUseCase_Existe(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	uc := newUC(mockRepo)
	ctx := context.Background()

	mockRepo.On("ExistePorID", ctx, int64(7)).Return(true, nil).Once()
	mockRepo.On("ExistePorID", ctx, int64(9999)).Return(false, nil).Once()

	exists, err := uc.Existe(ctx, 7)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = uc.Existe(ctx, 9999)
	require.NoError(t, err)
	require.False(t, exists)

	mockRepo.AssertExpectations(t)
}

func TestProductoUseCase_Obtener(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	uc := newUC(mockRepo)
	ctx := context.Background()

	producto := &domain.Producto{ID: 3, Nombre: "Cable", Precio: 2.75, Stock: 100}
	mockRepo.On("ObtenerPorID", ctx, int64(3)).Return(producto, nil).Once()
	mockRepo.On("ObtenerPorID", ctx, int64(9999)).Return(nil, nil).Once()

	got, err := uc.Obtener(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, producto, got)

	got, err = uc.Obtener(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, got)

	mockRepo.AssertExpectations(t)
}
