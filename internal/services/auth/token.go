package authservice

import (
	"distro/internal/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries every field of the authenticated user plus exp.
type Claims struct {
	IdUsuario     int       `json:"IdUsuario"`
	Nombre        string    `json:"Nombre"`
	Apellidos     string    `json:"Apellidos"`
	Correo        string    `json:"Correo"`
	Contrasena    string    `json:"Contraseña"`
	RolId         int       `json:"RolId"`
	Activo        bool      `json:"Activo"`
	FechaCreacion time.Time `json:"FechaCreacion"`
	IdRol         int       `json:"IdRol"`
	Rol           string    `json:"Rol"`
	jwt.RegisteredClaims
}

func newClaims(user *models.UserWithRole, expiresAt time.Time) Claims {
	return Claims{
		IdUsuario:     user.ID,
		Nombre:        user.Nombre,
		Apellidos:     user.Apellidos,
		Correo:        user.Correo,
		Contrasena:    user.Contrasena,
		RolId:         user.RolID,
		Activo:        user.Activo,
		FechaCreacion: user.FechaCreacion,
		IdRol:         user.IdRol,
		Rol:           user.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func signToken(claims Claims, secret []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
