package models

import "time"

// User is the writable part of a user row; the id comes from the store.
type User struct {
	Nombre     string `json:"Nombre"`
	Apellidos  string `json:"Apellidos"`
	Correo     string `json:"Correo"`
	Contrasena string `json:"Contraseña"`
	RolID      int    `json:"RolId"`
	Activo     bool   `json:"Activo"`
}

// UserWithRole is the read-only projection of a user joined with its role.
type UserWithRole struct {
	ID            int       `json:"IdUsuario"`
	Nombre        string    `json:"Nombre"`
	Apellidos     string    `json:"Apellidos"`
	Correo        string    `json:"Correo"`
	Contrasena    string    `json:"Contraseña"`
	RolID         int       `json:"RolId"`
	Activo        bool      `json:"Activo"`
	FechaCreacion time.Time `json:"FechaCreacion"`
	IdRol         int       `json:"IdRol"`
	Rol           string    `json:"Rol"`
}

type Token struct {
	Token     string
	ExpiresAt time.Time
}
