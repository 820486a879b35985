package models

type Store struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// StorePayload is the write body for POST /stores and PUT /stores/{id}.
// Blank optional fields are sent as explicit nulls.
type StorePayload struct {
	Name      string   `json:"name"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// StoreForm mirrors a store as editable text.
type StoreForm struct {
	Name      string `form:"name"`
	Address   string `form:"address"`
	Latitude  string `form:"latitude"`
	Longitude string `form:"longitude"`
}

// HasCoordinates reports whether both latitude and longitude are known.
func (s *Store) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// ToForm converts a Store into its editable text form.
func (s *Store) ToForm() StoreForm {
	return StoreForm{
		Name:      s.Name,
		Address:   stringText(s.Address),
		Latitude:  floatText(s.Latitude),
		Longitude: floatText(s.Longitude),
	}
}
