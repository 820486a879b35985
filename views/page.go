package views

import (
	"strconv"
	"strings"

	"shopping-helper-admin/crud"
	"shopping-helper-admin/models"
	"shopping-helper-admin/workspace"
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is one form input. Select fields carry Options.
type Field struct {
	Name     string
	Label    string
	Type     string // text, number or select
	Value    string
	Required bool
	Options  []Option
}

type Form struct {
	Title        string
	SubmitLabel  string
	Action       string
	CancelAction string
	Editing      bool
	Disabled     bool
	Fields       []Field
}

type List struct {
	Rows        []Row
	Loading     bool
	LoadingText string
	EmptyText   string
}

// Empty reports whether the placeholder message should be shown.
func (l List) Empty() bool {
	return !l.Loading && len(l.Rows) == 0
}

type Section struct {
	Heading string
	Form    Form
	List    List
}

type Page struct {
	Title    string
	Error    string
	Sections []Section
}

// Confirm is the blocking delete prompt.
type Confirm struct {
	Title     string
	Prompt    string
	Action    string
	CancelURL string
}

// BuildPage renders the workspace state into a page view model.
func BuildPage(title string, w *workspace.Workspace) Page {
	stores := w.Stores.State()
	products := w.Products.State()
	prices := w.Prices.State()
	lookup := NewLookup(stores.Items, products.Items)

	storeRows := make([]Row, 0, len(stores.Items))
	for _, s := range stores.Items {
		storeRows = append(storeRows, StoreRow(s))
	}
	productRows := make([]Row, 0, len(products.Items))
	for _, p := range products.Items {
		productRows = append(productRows, ProductRow(p))
	}
	priceRows := make([]Row, 0, len(prices.Items))
	for _, p := range prices.Items {
		priceRows = append(priceRows, PriceRow(p, lookup))
	}

	return Page{
		Title: title,
		Error: w.Banner.Message(),
		Sections: []Section{
			section(workspace.StoreEntity, stores, storeFields(stores.Form), storeRows),
			section(workspace.ProductEntity, products, productFields(products.Form), productRows),
			section(workspace.PriceEntity, prices, priceFields(prices.Form, stores.Items, products.Items), priceRows),
		},
	}
}

// BuildConfirm renders the delete prompt for one record.
func BuildConfirm[T any, F any](entity crud.Entity[T, F], id uint) Confirm {
	base := entity.Path + "/" + strconv.FormatUint(uint64(id), 10)
	return Confirm{
		Title:     "Delete " + entity.Name,
		Prompt:    entity.DeletePrompt(),
		Action:    base + "/delete",
		CancelURL: "/",
	}
}

func section[T any, F any](entity crud.Entity[T, F], st crud.State[T, F], fields []Field, rows []Row) Section {
	name := titleCase(entity.Name)

	form := Form{
		Title:        "Add " + name,
		SubmitLabel:  "Add " + name,
		Action:       entity.Path,
		CancelAction: entity.Path + "/cancel",
		Editing:      st.Editing(),
		// Empty required inputs are blocked by the browser and re-checked by Submit.
		Disabled: st.Submitting,
		Fields:   fields,
	}
	if form.Editing {
		form.Title = "Edit " + name
		form.SubmitLabel = "Save Changes"
	}
	if st.Submitting {
		form.SubmitLabel = "Adding..."
		if form.Editing {
			form.SubmitLabel = "Saving..."
		}
	}

	return Section{
		Heading: titleCase(entity.Plural),
		Form:    form,
		List: List{
			Rows:        rows,
			Loading:     st.Loading,
			LoadingText: "Loading " + entity.Plural + "...",
			EmptyText:   "No " + entity.Plural + " found yet. Add one using the form above.",
		},
	}
}

func storeFields(f models.StoreForm) []Field {
	return []Field{
		{Name: "name", Label: "Name", Type: "text", Value: f.Name, Required: true},
		{Name: "address", Label: "Address", Type: "text", Value: f.Address},
		{Name: "latitude", Label: "Latitude", Type: "number", Value: f.Latitude},
		{Name: "longitude", Label: "Longitude", Type: "number", Value: f.Longitude},
	}
}

func productFields(f models.ProductForm) []Field {
	return []Field{
		{Name: "name", Label: "Name", Type: "text", Value: f.Name, Required: true},
		{Name: "brand", Label: "Brand", Type: "text", Value: f.Brand},
		{Name: "category", Label: "Category", Type: "text", Value: f.Category, Required: true},
		{Name: "unit", Label: "Unit (e.g. L, g, item)", Type: "text", Value: f.Unit},
		{Name: "size", Label: "Size", Type: "number", Value: f.Size},
	}
}

func priceFields(f models.PriceForm, stores []models.Store, products []models.Product) []Field {
	storeOpts := []Option{{Value: "", Label: "-- Select store --", Selected: f.StoreID == ""}}
	for _, s := range stores {
		v := strconv.FormatUint(uint64(s.ID), 10)
		storeOpts = append(storeOpts, Option{Value: v, Label: s.Name, Selected: v == f.StoreID})
	}
	productOpts := []Option{{Value: "", Label: "-- Select product --", Selected: f.ProductID == ""}}
	for _, p := range products {
		v := strconv.FormatUint(uint64(p.ID), 10)
		productOpts = append(productOpts, Option{Value: v, Label: p.Name, Selected: v == f.ProductID})
	}

	return []Field{
		{Name: "store_id", Label: "Store", Type: "select", Value: f.StoreID, Required: true, Options: storeOpts},
		{Name: "product_id", Label: "Product", Type: "select", Value: f.ProductID, Required: true, Options: productOpts},
		// text, so a non-numeric value reaches the server-side check
		{Name: "price", Label: "Price", Type: "text", Value: f.Price, Required: true},
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
