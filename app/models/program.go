package models

// Program (carrera) belongs to exactly one school
type Program struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required"`
	SchoolID string `json:"schoolId" validate:"required"`
	IsActive bool   `json:"active"`
}
