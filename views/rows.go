package views

import (
	"fmt"

	"shopping-helper-admin/models"
)

// Row is one rendered list entry with its Edit and Delete actions.
type Row struct {
	ID        uint
	Title     string
	Lines     []string
	EditURL   string
	DeleteURL string
}

func newRow(path string, id uint, title string, lines ...string) Row {
	return Row{
		ID:        id,
		Title:     title,
		Lines:     lines,
		EditURL:   fmt.Sprintf("%s/%d/edit", path, id),
		DeleteURL: fmt.Sprintf("%s/%d/delete", path, id),
	}
}

func StoreRow(s models.Store) Row {
	var lines []string
	if s.Address != nil && *s.Address != "" {
		lines = append(lines, *s.Address)
	}
	if s.HasCoordinates() {
		lines = append(lines, fmt.Sprintf("(%s, %s)", models.FormatFloat(*s.Latitude), models.FormatFloat(*s.Longitude)))
	}
	return newRow("/stores", s.ID, s.Name, lines...)
}

func ProductRow(p models.Product) Row {
	var lines []string
	if p.Brand != nil && *p.Brand != "" {
		lines = append(lines, "Brand: "+*p.Brand)
	}
	if p.Category != nil && *p.Category != "" {
		lines = append(lines, "Category: "+*p.Category)
	}
	if m := p.Measure(); m != "" {
		lines = append(lines, m)
	}
	return newRow("/products", p.ID, p.Name, lines...)
}

// Lookup resolves store and product names for price rows.
type Lookup struct {
	stores   map[uint]string
	products map[uint]string
}

func NewLookup(stores []models.Store, products []models.Product) Lookup {
	l := Lookup{
		stores:   make(map[uint]string, len(stores)),
		products: make(map[uint]string, len(products)),
	}
	for _, s := range stores {
		l.stores[s.ID] = s.Name
	}
	for _, p := range products {
		l.products[p.ID] = p.Name
	}
	return l
}

// StoreName falls back to "Store #<id>" when the store is gone.
func (l Lookup) StoreName(id uint) string {
	if name, ok := l.stores[id]; ok {
		return name
	}
	return fmt.Sprintf("Store #%d", id)
}

// ProductName falls back to "Product #<id>" when the product is gone.
func (l Lookup) ProductName(id uint) string {
	if name, ok := l.products[id]; ok {
		return name
	}
	return fmt.Sprintf("Product #%d", id)
}

func PriceRow(p models.Price, l Lookup) Row {
	lines := []string{
		"Store: " + l.StoreName(p.StoreID),
		"Price: " + models.FormatFloat(p.Price),
	}
	if p.LastUpdated != nil {
		lines = append(lines, "Updated: "+p.LastUpdated.Format("02-01-2006 15:04:05"))
	}
	return newRow("/prices", p.ID, l.ProductName(p.ProductID), lines...)
}
