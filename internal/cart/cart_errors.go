package cart

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

// Store-level sentinels keep the precise rejection cause; the service
// collapses add/update rejections into the coarse messages below, which
// is all the API reveals.
var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart item not found",
		http.StatusNotFound,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeValidation,
		"Quantity must be greater than 0",
		http.StatusBadRequest,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeInvalidRequest,
		"Product does not exist",
		http.StatusBadRequest,
	)

	ErrInsufficientStock = apperror.New(
		apperror.CodeInvalidRequest,
		"Insufficient stock",
		http.StatusBadRequest,
	)

	ErrCannotAdd = apperror.New(
		apperror.CodeInvalidRequest,
		"Could not add product to cart. Product may not exist or insufficient stock.",
		http.StatusBadRequest,
	)

	ErrCannotUpdate = apperror.New(
		apperror.CodeInvalidRequest,
		"Could not update cart item. Item may not exist or insufficient stock.",
		http.StatusBadRequest,
	)
)
