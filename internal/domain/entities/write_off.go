package entities

import "time"

// WriteOffPercentages is the per-client classification configuration.
// Values are percentages (0-100) of the vehicle retail value.
//
// Storage model (DynamoDB):
//   - PK: client_id
type WriteOffPercentages struct {
	ClientID   string    `json:"client_id"`
	Borderline float64   `json:"borderline"`
	Total      float64   `json:"total"`
	Salvage    float64   `json:"salvage"`
	UpdatedAt  time.Time `json:"updated_at"`
}
