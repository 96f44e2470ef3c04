package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"omitempty,oneof=admin teacher area_manager"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		form    loginForm
		wantErr string
	}{
		{
			name: "valid",
			form: loginForm{Email: "a@b.co", Password: "12345678", Role: "teacher"},
		},
		{
			name:    "missing fields",
			form:    loginForm{},
			wantErr: "Email is required; Password is required",
		},
		{
			name:    "bad email",
			form:    loginForm{Email: "not-an-email", Password: "12345678"},
			wantErr: "Email must be a valid email",
		},
		{
			name:    "bad enum value",
			form:    loginForm{Email: "a@b.co", Password: "12345678", Role: "student"},
			wantErr: "Role must be one of: admin teacher area_manager",
		},
		{
			name:    "fallback message",
			form:    loginForm{Email: "a@b.co", Password: "short"},
			wantErr: "Password is invalid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.form)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
