package server

import (
	"context"
	"distro/internal/models"
	"io"
)

type AuthService interface {
	Login(ctx context.Context, email string, password string) (*models.Token, error)
	ChangePassword(ctx context.Context, email string, newPassword string) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*models.UserWithRole, error)
	CreateUser(ctx context.Context, user models.User) error
	UpdateUser(ctx context.Context, id int, user models.User) error
	DeleteUser(ctx context.Context, id int) error
}

type FileService interface {
	PrepareUpload() error
	Upload(ctx context.Context, upload models.Upload, content io.Reader) (*models.StoredFile, error)
	Open(ctx context.Context, name string) (*models.FileContent, error)
	Delete(ctx context.Context, name string) error
}
