package cart

import (
	"context"

	"go-storefront-api/internal/events"

	"go.uber.org/zap"
)

type Service interface {
	Detail(ctx context.Context) (Cart, error)
	AddItem(ctx context.Context, req AddToCartRequest) (CartItem, error)
	GetItem(ctx context.Context, cartItemID int) (CartItem, error)
	UpdateItem(ctx context.Context, cartItemID int, req UpdateCartItemRequest) (CartItem, error)
	RemoveItem(ctx context.Context, cartItemID int) error
	Clear(ctx context.Context) error
}

type service struct {
	store  *Store
	events events.Publisher
	logger *zap.Logger
}

func NewService(store *Store, publisher events.Publisher) Service {
	return &service{
		store:  store,
		events: publisher,
		logger: zap.L().Named("cart.service"),
	}
}

func (s *service) Detail(_ context.Context) (Cart, error) {
	return s.store.Aggregate(), nil
}

func (s *service) AddItem(ctx context.Context, req AddToCartRequest) (CartItem, error) {
	if req.Quantity <= 0 {
		return CartItem{}, ErrInvalidQuantity
	}

	item, err := s.store.AddItem(req.ProductID, req.Quantity)
	if err != nil {
		// The caller only learns the coarse outcome; the exact cause
		// stays in the log.
		s.logger.Info("add to cart rejected",
			zap.Int("product_id", req.ProductID),
			zap.Int("quantity", req.Quantity),
			zap.Error(err),
		)
		return CartItem{}, ErrCannotAdd
	}

	s.events.Publish(ctx, "cart.item.added", "cart_item", item.ID, item)
	return item, nil
}

func (s *service) GetItem(_ context.Context, cartItemID int) (CartItem, error) {
	item, ok := s.store.GetItem(cartItemID)
	if !ok {
		return CartItem{}, ErrItemNotFound
	}
	return item, nil
}

func (s *service) UpdateItem(ctx context.Context, cartItemID int, req UpdateCartItemRequest) (CartItem, error) {
	if req.Quantity <= 0 {
		return CartItem{}, ErrInvalidQuantity
	}

	item, err := s.store.UpdateQuantity(cartItemID, req.Quantity)
	if err != nil {
		s.logger.Info("cart item update rejected",
			zap.Int("cart_item_id", cartItemID),
			zap.Int("quantity", req.Quantity),
			zap.Error(err),
		)
		return CartItem{}, ErrCannotUpdate
	}

	s.events.Publish(ctx, "cart.item.updated", "cart_item", item.ID, item)
	return item, nil
}

func (s *service) RemoveItem(ctx context.Context, cartItemID int) error {
	if !s.store.RemoveItem(cartItemID) {
		return ErrItemNotFound
	}

	s.events.Publish(ctx, "cart.item.removed", "cart_item", cartItemID, nil)
	return nil
}

func (s *service) Clear(ctx context.Context) error {
	s.store.Clear()
	s.events.Publish(ctx, "cart.cleared", "cart", 0, nil)
	return nil
}
