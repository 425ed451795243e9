package types

type EntryRequest struct {
	EnrollmentNumber string `json:"enrollment_number"`
}

type EntryResponse struct {
	OK               bool   `json:"ok"`
	EnrollmentNumber string `json:"enrollment_number"`
	Name             string `json:"name"`
	Status           string `json:"status"` // "IN" | "OUT"
	OccurredAt       string `json:"occurred_at"`
}
