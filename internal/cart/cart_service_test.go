package cart_test

import (
	"context"
	"testing"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/events"
	"go-storefront-api/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (cart.Service, product.Product) {
	t.Helper()
	catalog, p := seedCatalog(t)
	store := cart.NewStore(catalog)
	return cart.NewService(store, events.Nop{}), p
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds_item", func(t *testing.T) {
		svc, p := newTestService(t)

		item, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: p.ID, Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		svc, p := newTestService(t)

		_, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: p.ID, Quantity: 0})
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("unknown_product_maps_to_cannot_add", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: 9999, Quantity: 1})
		assert.ErrorIs(t, err, cart.ErrCannotAdd)
	})

	t.Run("insufficient_stock_maps_to_cannot_add", func(t *testing.T) {
		svc, p := newTestService(t)

		_, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: p.ID, Quantity: p.Stock + 1})
		assert.ErrorIs(t, err, cart.ErrCannotAdd)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("updates_quantity", func(t *testing.T) {
		svc, p := newTestService(t)
		item, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: p.ID, Quantity: 1})
		require.NoError(t, err)

		updated, err := svc.UpdateItem(ctx, item.ID, cart.UpdateCartItemRequest{Quantity: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Quantity)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		svc, p := newTestService(t)
		item, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: p.ID, Quantity: 1})
		require.NoError(t, err)

		_, err = svc.UpdateItem(ctx, item.ID, cart.UpdateCartItemRequest{Quantity: -1})
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("unknown_item_maps_to_cannot_update", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.UpdateItem(ctx, 42, cart.UpdateCartItemRequest{Quantity: 1})
		assert.ErrorIs(t, err, cart.ErrCannotUpdate)
	})

	t.Run("insufficient_stock_maps_to_cannot_update", func(t *testing.T) {
		svc, p := newTestService(t)
		item, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: p.ID, Quantity: 1})
		require.NoError(t, err)

		_, err = svc.UpdateItem(ctx, item.ID, cart.UpdateCartItemRequest{Quantity: p.Stock + 1})
		assert.ErrorIs(t, err, cart.ErrCannotUpdate)
	})
}

func TestCartService_GetItem(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestService(t)

	item, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	got, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)

	_, err = svc.GetItem(ctx, item.ID+1)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestService(t)

	item, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, item.ID))
	assert.ErrorIs(t, svc.RemoveItem(ctx, item.ID), cart.ErrItemNotFound)
}

func TestCartService_ClearAndDetail(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestService(t)

	_, err := svc.AddItem(ctx, cart.AddToCartRequest{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	detail, err := svc.Detail(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.TotalItems)

	require.NoError(t, svc.Clear(ctx))
	require.NoError(t, svc.Clear(ctx))

	detail, err = svc.Detail(ctx)
	require.NoError(t, err)
	assert.Empty(t, detail.Items)
	assert.Equal(t, 0, detail.TotalItems)
	assert.Equal(t, 0.0, detail.TotalPrice)
}
