package entities

import "time"

type UserWithRole struct {
	ID            int       `db:"id_usuario"`
	Nombre        string    `db:"nombre"`
	Apellidos     string    `db:"apellidos"`
	Correo        string    `db:"correo"`
	Contrasena    string    `db:"contrasena"`
	RolID         int       `db:"rol_id"`
	Activo        bool      `db:"activo"`
	FechaCreacion time.Time `db:"fecha_creacion"`
	IdRol         int       `db:"id_rol"`
	Rol           string    `db:"rol"`
}
