package workspace

import (
	"strings"

	"shopping-helper-admin/crud"
	"shopping-helper-admin/models"
)

var StoreEntity = crud.Entity[models.Store, models.StoreForm]{
	Name:   "store",
	Plural: "stores",
	Path:   "/stores",
	ID:     func(s models.Store) uint { return s.ID },
	ToForm: func(s models.Store) models.StoreForm { return s.ToForm() },
	Ready: func(f models.StoreForm) bool {
		return !crud.Blank(f.Name)
	},
	Payload: func(f models.StoreForm) (any, error) {
		return models.StorePayload{
			Name:      strings.TrimSpace(f.Name),
			Address:   crud.OptionalString(f.Address),
			Latitude:  crud.OptionalFloat(f.Latitude),
			Longitude: crud.OptionalFloat(f.Longitude),
		}, nil
	},
}

var ProductEntity = crud.Entity[models.Product, models.ProductForm]{
	Name:   "product",
	Plural: "products",
	Path:   "/products",
	ID:     func(p models.Product) uint { return p.ID },
	ToForm: func(p models.Product) models.ProductForm { return p.ToForm() },
	Ready: func(f models.ProductForm) bool {
		return !crud.Blank(f.Name) && !crud.Blank(f.Category)
	},
	Payload: func(f models.ProductForm) (any, error) {
		return models.ProductPayload{
			Name:     strings.TrimSpace(f.Name),
			Brand:    crud.OptionalString(f.Brand),
			Category: crud.OptionalString(f.Category),
			Unit:     crud.OptionalString(f.Unit),
			Size:     crud.OptionalFloat(f.Size),
		}, nil
	},
}

var PriceEntity = crud.Entity[models.Price, models.PriceForm]{
	Name:   "price",
	Plural: "prices",
	Path:   "/prices",
	ID:     func(p models.Price) uint { return p.ID },
	ToForm: func(p models.Price) models.PriceForm { return p.ToForm() },
	Ready: func(f models.PriceForm) bool {
		return !crud.Blank(f.StoreID) && !crud.Blank(f.ProductID) && !crud.Blank(f.Price)
	},
	Payload: func(f models.PriceForm) (any, error) {
		storeID, err := crud.RequiredID("store_id", "store", f.StoreID)
		if err != nil {
			return nil, err
		}
		productID, err := crud.RequiredID("product_id", "product", f.ProductID)
		if err != nil {
			return nil, err
		}
		price, err := crud.RequiredFloat("price", "Price", f.Price)
		if err != nil {
			return nil, err
		}
		return models.PricePayload{
			StoreID:   storeID,
			ProductID: productID,
			Price:     price,
		}, nil
	},
}
