package dto

type LoginRequest struct {
	Correo     string `json:"Correo"`
	Contrasena string `json:"Contraseña"`
}

type LoginResponse struct {
	Token      string `json:"token"`
	Expiracion string `json:"expiracion"`
}

type ChangePasswordRequest struct {
	Correo          string `json:"Correo"`
	NuevaContrasena string `json:"nuevaContrasena"`
}
