package models

// School (escuela) belongs to exactly one campus
type School struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	CampusID string `json:"campusId" validate:"required"`
	IsActive bool   `json:"active"`
}
