package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Secreto#2026")
	require.NoError(t, err)
	assert.NotEqual(t, "Secreto#2026", hash)

	assert.True(t, CheckPasswordHash("Secreto#2026", hash))
	assert.False(t, CheckPasswordHash("secreto#2026", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	user := &models.User{
		ID:          "u-1",
		Email:       "docente@asistencia.local",
		DisplayName: "Prof. Torres",
		Role:        models.RoleTeacher,
	}

	token, err := GenerateJWT(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "docente@asistencia.local", claims.Email)
	assert.Equal(t, "Prof. Torres", claims.DisplayName)
	assert.Equal(t, models.RoleTeacher, claims.Role)
	assert.Equal(t, "asistencia-web", claims.Issuer)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a token", token: "lmaooolol"},
		{name: "tampered", token: "eyJhbGciOiJIUzI1NiJ9.eyJ1c2VyX2lkIjoidS0xIn0.bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateJWT(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
