package cart

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
		logger:  zap.L().Named("cart.handler"),
	}
}

func (h *Handler) Detail(c *gin.Context) {
	cart, err := h.service.Detail(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, cart, "")
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeBadRequest,
			"Invalid request format: "+err.Error())
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	h.logger.Info("cart item added",
		zap.Int("cart_item_id", item.ID),
		zap.Int("product_id", item.ProductID),
		zap.Int("quantity", item.Quantity),
	)
	response.Success(c, http.StatusCreated, item, "Product added to cart successfully")
}

func (h *Handler) GetItem(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(c, http.StatusNotFound, apperror.CodeNotFound,
				fmt.Sprintf("Cart item with ID %d not found", id))
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, item, "")
}

// UpdateItem sets the quantity absolutely. A missing item surfaces as
// the same 400 INVALID_REQUEST as a stock violation: the store does not
// itemize the cause on updates.
func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeBadRequest,
			"Invalid request format: "+err.Error())
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, item, "Cart item updated successfully")
}

func (h *Handler) RemoveItem(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(c, http.StatusNotFound, apperror.CodeNotFound,
				fmt.Sprintf("Cart item with ID %d not found", id))
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, nil, "Item removed from cart successfully")
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, nil, "Cart cleared successfully")
}

func (h *Handler) parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeBadRequest, "Invalid cart item ID")
		return 0, false
	}
	return id, true
}
