package models

import (
	"strconv"
	"time"
)

type Price struct {
	ID          uint       `json:"id"`
	StoreID     uint       `json:"store_id"`
	ProductID   uint       `json:"product_id"`
	Price       float64    `json:"price"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// PricePayload is the write body for POST /prices and PUT /prices/{id}.
type PricePayload struct {
	StoreID   uint    `json:"store_id"`
	ProductID uint    `json:"product_id"`
	Price     float64 `json:"price"`
}

type PriceForm struct {
	StoreID   string `form:"store_id"`
	ProductID string `form:"product_id"`
	Price     string `form:"price"`
}

// ToForm converts a Price into its editable text form.
func (p *Price) ToForm() PriceForm {
	return PriceForm{
		StoreID:   strconv.FormatUint(uint64(p.StoreID), 10),
		ProductID: strconv.FormatUint(uint64(p.ProductID), 10),
		Price:     FormatFloat(p.Price),
	}
}
