package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a single catalog item. The ID is assigned by the store on
// first save and never changes afterwards. Price and Quantity are carried
// as given; no range checks are applied anywhere in the system.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
	Category    string `json:"category"`
}
