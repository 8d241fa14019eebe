package seed

import "go-storefront-api/internal/product"

// Products returns the catalog loaded at startup. Ids are assigned by
// the store on insert, so they are left zero here.
func Products() []product.Product {
	return []product.Product{
		{
			Name:        "Wireless Headphones",
			ImageURL:    "https://picsum.photos/seed/product1/400/400",
			Rating:      4.5,
			Price:       99.99,
			Description: "Premium wireless headphones with active noise cancellation and 30-hour battery life.",
			Category:    "Electronics",
			Stock:       50,
		},
		{
			Name:        "Smart Watch",
			ImageURL:    "https://picsum.photos/seed/product2/400/400",
			Rating:      4.8,
			Price:       199.99,
			Description: "Feature-rich smartwatch with fitness tracking, heart rate monitoring, and mobile payments.",
			Category:    "Electronics",
			Stock:       30,
		},
		{
			Name:        "Laptop",
			ImageURL:    "https://picsum.photos/seed/product3/400/400",
			Rating:      4.7,
			Price:       899.99,
			Description: "Powerful laptop with Intel i7 processor, 16GB RAM, and 512GB SSD for professionals.",
			Category:    "Computers",
			Stock:       20,
		},
		{
			Name:        "Smartphone",
			ImageURL:    "https://picsum.photos/seed/product4/400/400",
			Rating:      4.6,
			Price:       699.99,
			Description: "Latest smartphone with 5G connectivity, triple camera system, and all-day battery.",
			Category:    "Electronics",
			Stock:       40,
		},
		{
			Name:        "Bluetooth Speaker",
			ImageURL:    "https://picsum.photos/seed/product5/400/400",
			Rating:      4.4,
			Price:       49.99,
			Description: "Portable Bluetooth speaker with 360-degree sound and waterproof design.",
			Category:    "Audio",
			Stock:       75,
		},
		{
			Name:        "Gaming Mouse",
			ImageURL:    "https://picsum.photos/seed/product6/400/400",
			Rating:      4.7,
			Price:       79.99,
			Description: "RGB gaming mouse with 16000 DPI, programmable buttons, and ergonomic design.",
			Category:    "Accessories",
			Stock:       60,
		},
		{
			Name:        "Mechanical Keyboard",
			ImageURL:    "https://picsum.photos/seed/product7/400/400",
			Rating:      4.8,
			Price:       129.99,
			Description: "Premium mechanical keyboard with customizable RGB lighting and Cherry MX switches.",
			Category:    "Accessories",
			Stock:       35,
		},
		{
			Name:        "4K Monitor",
			ImageURL:    "https://picsum.photos/seed/product8/400/400",
			Rating:      4.6,
			Price:       349.99,
			Description: "27-inch 4K UHD monitor with HDR support and USB-C connectivity.",
			Category:    "Displays",
			Stock:       25,
		},
		{
			Name:        "Webcam",
			ImageURL:    "https://picsum.photos/seed/product9/400/400",
			Rating:      4.3,
			Price:       89.99,
			Description: "1080p HD webcam with auto-focus and built-in microphone for video calls.",
			Category:    "Accessories",
			Stock:       45,
		},
		{
			Name:        "External SSD",
			ImageURL:    "https://picsum.photos/seed/product10/400/400",
			Rating:      4.9,
			Price:       149.99,
			Description: "1TB portable SSD with USB 3.2 Gen 2 for ultra-fast data transfer.",
			Category:    "Storage",
			Stock:       55,
		},
	}
}
