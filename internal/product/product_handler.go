package product

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/httpx"
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
		logger:  zap.L().Named("product.handler"),
	}
}

// List serves GET /products: full, searched or category-filtered set,
// paginated when both page and pageSize are supplied and positive.
func (h *Handler) List(c *gin.Context) {
	pg := httpx.ParsePagination(c)

	res, err := h.service.List(c.Request.Context(), ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     pg.Page,
		PageSize: pg.PageSize,
	})
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	if res.Paginated {
		response.SuccessWithPagination(c, http.StatusOK, res.Items, res.Page, res.PageSize, res.TotalItems)
		return
	}
	response.Success(c, http.StatusOK, res.Items, "")
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, apperror.CodeNotFound,
				fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, p, "")
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeBadRequest,
			"Invalid request body: "+err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	h.logger.Info("product created", zap.Int("id", created.ID), zap.String("name", created.Name))
	response.Success(c, http.StatusCreated, created, "Product created successfully")
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeBadRequest,
			"Invalid request body: "+err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, apperror.CodeNotFound,
				fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, updated, "Product updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, apperror.CodeNotFound,
				fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	h.logger.Info("product deleted", zap.Int("id", id))
	response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, categories, "")
}

func (h *Handler) parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeBadRequest, "Invalid product ID")
		return 0, false
	}
	return id, true
}
