package product

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrEmptyName = apperror.New(
		apperror.CodeValidation,
		"Product name cannot be empty",
		http.StatusBadRequest,
	)

	ErrInvalidPrice = apperror.New(
		apperror.CodeValidation,
		"Product price must be greater than 0",
		http.StatusBadRequest,
	)

	ErrInvalidRating = apperror.New(
		apperror.CodeValidation,
		"Product rating must be between 0 and 5",
		http.StatusBadRequest,
	)
)
