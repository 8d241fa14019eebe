package product

// CreateProductRequest is the POST body. Description, category and stock
// are pointers so an omitted field can fall back to its default.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Price       float64 `json:"price" validate:"gt=0"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Stock       *int    `json:"stock"`
}

func (r CreateProductRequest) toProduct() Product {
	p := Product{
		Name:     r.Name,
		ImageURL: r.ImageURL,
		Rating:   r.Rating,
		Price:    r.Price,
		Category: DefaultCategory,
		Stock:    DefaultStock,
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	return p
}

// UpdateProductRequest is the PUT body. Every field is optional; a nil
// pointer means "leave unchanged", never "clear".
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	ImageURL    *string  `json:"imageUrl"`
	Rating      *float64 `json:"rating"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

// ListQuery selects the product listing mode. Search wins over category
// when both are set; pagination activates only when both page values are
// positive.
type ListQuery struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

type ListResult struct {
	Items      []Product
	TotalItems int
	Page       int
	PageSize   int
	Paginated  bool
}
