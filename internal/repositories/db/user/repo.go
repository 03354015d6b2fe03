package userrepo

import (
	"context"
	"distro/internal/entities"
	"distro/internal/hasher"
	"distro/internal/models"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const pkg = "userRepo/"

const selectUserWithRole = `SELECT
			u.id_usuario AS id_usuario,
			u.nombre AS nombre,
			u.apellidos AS apellidos,
			u.correo AS correo,
			u.contrasena AS contrasena,
			u.rol_id AS rol_id,
			u.activo AS activo,
			u.fecha_creacion AS fecha_creacion,
			r.id_rol AS id_rol,
			r.rol AS rol
		FROM usuario u
		JOIN rol r ON r.id_rol = u.rol_id`

type repository struct {
	db     *sqlx.DB
	hasher hasher.Hasher
}

func NewRepository(db *sqlx.DB, h hasher.Hasher) *repository {
	return &repository{db: db, hasher: h}
}

func (r *repository) ListUsersWithRoles(ctx context.Context) ([]*models.UserWithRole, error) {
	op := pkg + "ListUsersWithRoles"

	rawUsers := []entities.UserWithRole{}

	err := r.db.SelectContext(ctx, &rawUsers,
		`SELECT
			id_usuario, nombre, apellidos, correo, contrasena,
			rol_id, activo, fecha_creacion, id_rol, rol
		FROM obtener_usuario_rol()`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toModels(rawUsers), nil
}

func (r *repository) CreateUser(ctx context.Context, user models.User) error {
	op := pkg + "CreateUser"

	passHash, err := r.hasher.Hash(user.Contrasena)
	if err != nil {
		return fmt.Errorf("%s: hash password: %w", op, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO usuario(nombre, apellidos, correo, contrasena, rol_id, activo)
		VALUES($1, $2, $3, $4, $5, $6)`,
		user.Nombre, user.Apellidos, user.Correo, passHash, user.RolID, user.Activo)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateUser overwrites every mutable field. user.Contrasena must be the
// plaintext password: it is hashed unconditionally, so an already hashed
// value would be stored double hashed.
func (r *repository) UpdateUser(ctx context.Context, id int, user models.User) error {
	op := pkg + "UpdateUser"

	passHash, err := r.hasher.Hash(user.Contrasena)
	if err != nil {
		return fmt.Errorf("%s: hash password: %w", op, err)
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE usuario
		SET nombre = $1, apellidos = $2, correo = $3, contrasena = $4, rol_id = $5, activo = $6
		WHERE id_usuario = $7`,
		user.Nombre, user.Apellidos, user.Correo, passHash, user.RolID, user.Activo, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) DeleteUser(ctx context.Context, id int) error {
	op := pkg + "DeleteUser"

	_, err := r.db.ExecContext(ctx, `DELETE FROM usuario WHERE id_usuario = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserByCredentials returns the first user (lowest id) with the given email
// whose stored hash matches password.
func (r *repository) UserByCredentials(ctx context.Context, email string, password string) (*models.UserWithRole, error) {
	op := pkg + "UserByCredentials"

	rawUsers, err := r.usersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, rawUser := range rawUsers {
		if r.hasher.Compare(rawUser.Contrasena, password) {
			return toModel(rawUser), nil
		}
	}

	return nil, models.ErrUserNotFound
}

func (r *repository) UserByEmail(ctx context.Context, email string) (*models.UserWithRole, error) {
	op := pkg + "UserByEmail"

	rawUsers, err := r.usersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(rawUsers) == 0 {
		return nil, models.ErrUserNotFound
	}

	return toModel(rawUsers[0]), nil
}

// SetPassword updates every row sharing the email.
func (r *repository) SetPassword(ctx context.Context, email string, password string) error {
	op := pkg + "SetPassword"

	passHash, err := r.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("%s: hash password: %w", op, err)
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE usuario SET contrasena = $1 WHERE correo = $2`,
		passHash, email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) usersByEmail(ctx context.Context, email string) ([]entities.UserWithRole, error) {
	rawUsers := []entities.UserWithRole{}

	err := r.db.SelectContext(ctx, &rawUsers,
		selectUserWithRole+`
		WHERE u.correo = $1
		ORDER BY u.id_usuario`, email)
	if err != nil {
		return nil, err
	}

	return rawUsers, nil
}

func toModel(raw entities.UserWithRole) *models.UserWithRole {
	return &models.UserWithRole{
		ID:            raw.ID,
		Nombre:        raw.Nombre,
		Apellidos:     raw.Apellidos,
		Correo:        raw.Correo,
		Contrasena:    raw.Contrasena,
		RolID:         raw.RolID,
		Activo:        raw.Activo,
		FechaCreacion: raw.FechaCreacion,
		IdRol:         raw.IdRol,
		Rol:           raw.Rol,
	}
}

func toModels(raw []entities.UserWithRole) []*models.UserWithRole {
	users := make([]*models.UserWithRole, 0, len(raw))
	for _, u := range raw {
		users = append(users, toModel(u))
	}
	return users
}
