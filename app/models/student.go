package models

// Student belongs to exactly one class group. StudentNumber is the
// university-issued matrícula, distinct from the row identifier.
type Student struct {
	ID            string  `json:"id"`
	StudentNumber string  `json:"studentId" validate:"required"`
	FirstName     string  `json:"firstName" validate:"required"`
	LastName      string  `json:"lastName" validate:"required"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty"`
	ClassGroupID  string  `json:"classGroupId" validate:"required"`
	IsActive      bool    `json:"active"`
}

// FullName returns "First Last" for display and search
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
