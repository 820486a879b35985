package models

type Product struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Brand    *string  `json:"brand"`
	Category *string  `json:"category"`
	Unit     *string  `json:"unit"` // e.g. "L", "g", "item"
	Size     *float64 `json:"size"` // e.g. 1.0 for 1L, 500 for 500g
}

// ProductPayload is the write body for POST /products and PUT /products/{id}.
type ProductPayload struct {
	Name     string   `json:"name"`
	Brand    *string  `json:"brand"`
	Category *string  `json:"category"`
	Unit     *string  `json:"unit"`
	Size     *float64 `json:"size"`
}

type ProductForm struct {
	Name     string `form:"name"`
	Brand    string `form:"brand"`
	Category string `form:"category"`
	Unit     string `form:"unit"`
	Size     string `form:"size"`
}

// ToForm converts a Product into its editable text form.
func (p *Product) ToForm() ProductForm {
	return ProductForm{
		Name:     p.Name,
		Brand:    stringText(p.Brand),
		Category: stringText(p.Category),
		Unit:     stringText(p.Unit),
		Size:     floatText(p.Size),
	}
}

// Measure renders size and unit together, or whichever one is set.
func (p *Product) Measure() string {
	unit := stringText(p.Unit)
	switch {
	case p.Size != nil && unit != "":
		return FormatFloat(*p.Size) + " " + unit
	case p.Size != nil:
		return FormatFloat(*p.Size)
	default:
		return unit
	}
}
