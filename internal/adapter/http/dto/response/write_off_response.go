package response

import (
	"time"

	"claims_xpto/internal/domain/entities"
)

type WriteOffResponse struct {
	ClientID   string    `json:"client_id"`
	Borderline float64   `json:"borderline"`
	Total      float64   `json:"total"`
	Salvage    float64   `json:"salvage"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromWriteOff(p entities.WriteOffPercentages) WriteOffResponse {
	return WriteOffResponse{
		ClientID:   p.ClientID,
		Borderline: p.Borderline,
		Total:      p.Total,
		Salvage:    p.Salvage,
		UpdatedAt:  p.UpdatedAt,
	}
}
