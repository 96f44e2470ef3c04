package models

// Campus (recinto) is the root of the organizational hierarchy
type Campus struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Address  *string `json:"address,omitempty"`
	IsActive bool    `json:"active"`
}
