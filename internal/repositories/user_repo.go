package repositories

import (
	"context"
	"database/sql"
	"time"

	"deudasBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO usuarios (username, nombre, apellido, telefono, correo, dni, password, role, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	user.CreatedAt = time.Now()
	user.UpdatedAt = &user.CreatedAt
	result, err := r.DB.ExecContext(ctx, query,
		user.Username, user.Nombre, user.Apellido, user.Telefono, user.Correo, user.DNI,
		user.Password, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	query := `
        SELECT id, username, nombre, apellido, telefono, correo, dni, password, role, created_at, updated_at
        FROM usuarios
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Nombre, &user.Apellido, &user.Telefono,
		&user.Correo, &user.DNI, &user.Password, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetUserByCorreo returns the zero User and nil error when no account
// uses the email, so callers can test for duplicates.
func (r *UserRepository) GetUserByCorreo(ctx context.Context, correo string) (models.User, error) {
	var user models.User
	query := `
        SELECT id, username, nombre, apellido, telefono, correo, dni, password, role, created_at, updated_at
        FROM usuarios
        WHERE correo = ?
    `
	err := r.DB.QueryRowContext(ctx, query, correo).Scan(
		&user.ID, &user.Username, &user.Nombre, &user.Apellido, &user.Telefono,
		&user.Correo, &user.DNI, &user.Password, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) SetSession(ctx context.Context, userID int, session models.Session) error {
	query := `
        UPDATE usuarios
        SET refresh_token = ?, expires_at = ?
        WHERE id = ?
    `
	result, err := r.DB.ExecContext(ctx, query, session.RefreshToken, session.ExpiresAt, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `
        SELECT id, role, refresh_token, expires_at
        FROM usuarios
        WHERE refresh_token = ?
    `
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}
