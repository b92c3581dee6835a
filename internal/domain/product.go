package domain

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Rating      float64   `json:"rating"`
	InStock     bool      `json:"inStock"`
	StockCount  int       `json:"stockCount"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}
