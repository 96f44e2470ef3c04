package models

import "time"

// User is an application account: administrator, teacher or area manager
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email" validate:"required,email"`
	Password    string    `json:"-"`
	DisplayName string    `json:"displayName" validate:"required"`
	Role        Role      `json:"role" validate:"required,oneof=admin teacher area_manager"`
	PhotoURL    *string   `json:"photoURL,omitempty"`
	IsActive    bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}
