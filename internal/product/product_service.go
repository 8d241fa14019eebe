package product

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-storefront-api/internal/events"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/shared/cache"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	categoriesCacheKey = "catalog:categories"
	categoriesCacheTTL = 5 * time.Minute
)

type Service interface {
	List(ctx context.Context, q ListQuery) (ListResult, error)
	Get(ctx context.Context, id int) (Product, error)
	Create(ctx context.Context, req CreateProductRequest) (Product, error)
	Update(ctx context.Context, id int, req UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id int) error
	Categories(ctx context.Context) ([]string, error)
}

type service struct {
	store    *Store
	validate *validator.Validate
	cache    cache.Cache
	events   events.Publisher
	logger   *zap.Logger
}

func NewService(store *Store, c cache.Cache, publisher events.Publisher) Service {
	return &service{
		store:    store,
		validate: validator.New(),
		cache:    c,
		events:   publisher,
		logger:   zap.L().Named("product.service"),
	}
}

func (s *service) List(_ context.Context, q ListQuery) (ListResult, error) {
	var items []Product
	switch {
	case strings.TrimSpace(q.Search) != "":
		items = s.store.Search(q.Search)
	case strings.TrimSpace(q.Category) != "":
		items = s.store.ListByCategory(q.Category)
	default:
		items = s.store.ListAll()
	}

	if q.Page > 0 && q.PageSize > 0 {
		pageItems, total := Paginate(items, q.Page, q.PageSize)
		return ListResult{
			Items:      pageItems,
			TotalItems: total,
			Page:       q.Page,
			PageSize:   q.PageSize,
			Paginated:  true,
		}, nil
	}

	return ListResult{Items: items, TotalItems: len(items)}, nil
}

func (s *service) Get(_ context.Context, id int) (Product, error) {
	p, ok := s.store.GetByID(id)
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return Product{}, ErrEmptyName
	}
	if err := s.validate.Struct(req); err != nil {
		return Product{}, mapValidationError(err)
	}

	created := s.store.Create(req.toProduct())

	s.invalidateCategories(ctx)
	s.events.Publish(ctx, "product.created", "product", created.ID, created)

	return created, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateProductRequest) (Product, error) {
	if req.Price != nil && *req.Price <= 0 {
		return Product{}, ErrInvalidPrice
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return Product{}, ErrInvalidRating
	}

	updated, ok := s.store.Update(id, req)
	if !ok {
		return Product{}, ErrProductNotFound
	}

	s.invalidateCategories(ctx)
	s.events.Publish(ctx, "product.updated", "product", updated.ID, updated)

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if !s.store.Delete(id) {
		return ErrProductNotFound
	}

	s.invalidateCategories(ctx)
	s.events.Publish(ctx, "product.deleted", "product", id, nil)

	return nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	cached, err := s.cache.GetStrings(ctx, categoriesCacheKey)
	if err == nil {
		return cached, nil
	}
	if err != cache.ErrMiss {
		s.logger.Warn("category cache read failed", zap.Error(err))
	}

	categories := s.store.Categories()

	if err := s.cache.SetStrings(ctx, categoriesCacheKey, categories, categoriesCacheTTL); err != nil {
		s.logger.Warn("category cache write failed", zap.Error(err))
	}
	return categories, nil
}

func (s *service) invalidateCategories(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, categoriesCacheKey); err != nil {
		s.logger.Warn("category cache invalidation failed", zap.Error(err))
	}
}

func mapValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.New(apperror.CodeValidation, err.Error(), http.StatusBadRequest)
	}

	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Price":
			return ErrInvalidPrice
		case "Rating":
			return ErrInvalidRating
		}
	}
	return apperror.New(apperror.CodeValidation, "Invalid product payload", http.StatusBadRequest)
}
