package user

import (
	"distro/internal/dto"
	"distro/internal/models"
	"distro/internal/validator"
	"encoding/json"
	"io"
	"net/http"
)

// decodeUser reads and validates a create/update body.
func decodeUser(r *http.Request) (models.User, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return models.User{}, err
	}
	defer r.Body.Close()

	var req dto.UserRequest

	if err := json.Unmarshal(body, &req); err != nil {
		return models.User{}, err
	}

	if err := validator.Struct(req); err != nil {
		return models.User{}, err
	}

	return models.User{
		Nombre:     req.Nombre,
		Apellidos:  req.Apellidos,
		Correo:     req.Correo,
		Contrasena: req.Contrasena,
		RolID:      req.RolID,
		Activo:     bool(*req.Activo),
	}, nil
}
