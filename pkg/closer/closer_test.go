package closer_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/intecsa-dev/productos-backend/pkg/closer"
	"github.com/stretchr/testify/require"
)

func TestClose_LIFOOrder(t *testing.T) {
	c := closer.NewCloser(0)

	var order []string
	c.Add(func(ctx context.Context) error {
		order = append(order, "db")
		return nil
	})
	c.Add(func(ctx context.Context) error {
		order = append(order, "http")
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.Equal(t, []string{"http", "db"}, order)
}

func TestClose_CollectsErrors(t *testing.T) {
	c := closer.NewCloser(0)

	c.Add(func(ctx context.Context) error {
		return fmt.Errorf("pool drain failed")
	})
	c.Add(func(ctx context.Context) error {
		return nil
	})

	err := c.Close(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "pool drain failed")
}

func TestClose_OnlyOnce(t *testing.T) {
	c := closer.NewCloser(0)

	calls := 0
	c.Add(func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	require.Equal(t, 1, calls)
}

func TestClose_ForcedAfterTimeout(t *testing.T) {
	c := closer.NewCloser(100 * time.Millisecond)

	blocked := make(chan struct{})
	c.Add(func(ctx context.Context) error {
		select {
		case <-blocked:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.Close(ctx)
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		require.Contains(t, err.Error(), "shutdown interrupted")
	case <-time.After(time.Second):
		t.Fatal("Close did not return after context timeout")
	}
	close(blocked)
}
