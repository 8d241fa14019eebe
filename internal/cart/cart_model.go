package cart

import "go-storefront-api/internal/product"

// CartItem is a cart line. Product is a denormalized snapshot captured
// at the time of the last mutation, not a live reference: deleting the
// catalog record leaves the snapshot intact.
type CartItem struct {
	ID        int             `json:"id"`
	ProductID int             `json:"productId"`
	Product   product.Product `json:"product"`
	Quantity  int             `json:"quantity"`
}

// Cart is the aggregate view, computed on read.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

//go:generate mockgen -source=cart_model.go -destination=../mock/catalog/catalog_mock.go -package=mock

// CatalogReader is the narrow catalog dependency: product existence and
// stock ceiling, read at call time.
type CatalogReader interface {
	GetByID(id int) (product.Product, bool)
}
