package request

// WriteOffRequest sets a client's write-off percentages of the vehicle retail
// value.
type WriteOffRequest struct {
	Borderline *float64 `json:"borderline" binding:"required"`
	Total      *float64 `json:"total" binding:"required"`
	Salvage    *float64 `json:"salvage" binding:"required"`
}
