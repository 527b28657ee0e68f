package dto

// Month Request DTOs

// OpenMonthRequest opens the month for a specific period. Both fields
// are optional; when absent the current calendar period is used.
type OpenMonthRequest struct {
	Year  int `json:"year" validate:"omitempty,min=1970"`
	Month int `json:"month" validate:"omitempty,month_number"`
}
