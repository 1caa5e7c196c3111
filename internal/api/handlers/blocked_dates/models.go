package blocked_dates

// BlockDateRequest HTTP request model
type BlockDateRequest struct {
	Date string `json:"date"` // "2026-09-15"
}

// BlockedDatesResponse HTTP response model
type BlockedDatesResponse struct {
	ServiceID int64    `json:"serviceId"`
	Dates     []string `json:"dates"`
}
