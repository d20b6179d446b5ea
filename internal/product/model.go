package product

import "time"

type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Cost         int       `json:"cost"`
	SellingPrice int       `json:"sellingPrice"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateProductInput struct {
	Name         string `json:"name"`
	Cost         int    `json:"cost"`
	SellingPrice int    `json:"sellingPrice"`
	Stock        int    `json:"stock"`
}

type UpdateProductInput struct {
	Name         *string `json:"name"`
	Cost         *int    `json:"cost"`
	SellingPrice *int    `json:"sellingPrice"`
	Stock        *int    `json:"stock"`
}
