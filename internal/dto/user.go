package dto

// UserRequest is the body of user create and update. Activo is a pointer so
// that an explicit false (or 0) can be told apart from a missing field.
type UserRequest struct {
	Nombre     string `json:"Nombre" validate:"required"`
	Apellidos  string `json:"Apellidos" validate:"required"`
	Correo     string `json:"Correo" validate:"required"`
	Contrasena string `json:"Contraseña" validate:"required"`
	RolID      int    `json:"RolId" validate:"required"`
	Activo     *Flag  `json:"Activo" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
