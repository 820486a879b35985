package models

// Health is the reply of the backend GET /health endpoint.
type Health struct {
	Status     string `json:"status"`
	StoresInDB int64  `json:"stores_in_db"`
}
