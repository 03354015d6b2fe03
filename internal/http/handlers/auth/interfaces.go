package auth

import (
	"context"
	"distro/internal/models"
)

const pkg = "authHandler/"

const (
	msgMissingCredentials = "Correo y contraseña son obligatorios"
	msgInvalidCredentials = "Credenciales incorrectas"
	msgLoginFailed        = "Error al iniciar sesión"
	msgMissingNewPassword = "Correo y nueva contraseña son obligatorios"
	msgUserNotFound       = "Usuario no encontrado"
	msgPasswordChanged    = "Contraseña actualizada exitosamente"
	msgChangeFailed       = "Error al cambiar la contraseña"
)

// expiryLayout matches JavaScript's Date.toISOString.
const expiryLayout = "2006-01-02T15:04:05.000Z"

type Authenticator interface {
	Login(ctx context.Context, email string, password string) (*models.Token, error)
}

type PasswordChanger interface {
	ChangePassword(ctx context.Context, email string, newPassword string) error
}
