package product

// Product is a sellable catalog record. The id is assigned by the store
// on creation and never changes or gets reused afterwards.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// Defaults applied when the create payload omits the optional fields.
const (
	DefaultCategory = "General"
	DefaultStock    = 100
)
