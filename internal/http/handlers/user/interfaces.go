package user

import (
	"context"
	"distro/internal/models"
)

const pkg = "userHandler/"

const (
	msgListFailed    = "Error al obtener usuarios y roles"
	msgMissingFields = "Todos los campos son obligatorios"
	msgInvalidID     = "Identificador de usuario inválido"
	msgCreated       = "Usuario creado exitosamente"
	msgCreateFailed  = "Error al crear usuario"
	msgUpdated       = "Usuario actualizado exitosamente"
	msgUpdateFailed  = "Error al actualizar usuario"
	msgDeleted       = "Usuario eliminado exitosamente"
	msgDeleteFailed  = "Error al eliminar usuario"
)

type UserLister interface {
	ListUsers(ctx context.Context) ([]*models.UserWithRole, error)
}

type UserCreator interface {
	CreateUser(ctx context.Context, user models.User) error
}

type UserUpdater interface {
	UpdateUser(ctx context.Context, id int, user models.User) error
}

type UserDeleter interface {
	DeleteUser(ctx context.Context, id int) error
}
