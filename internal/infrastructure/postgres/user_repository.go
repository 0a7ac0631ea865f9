package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// Ensure UserRepo implements repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementa la persistencia de usuarios sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository crea el repositorio de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create inserta un usuario.
func (r *UserRepo) Create(user *entity.User) error {
	ctx := context.Background()
	query := `
		INSERT INTO users (id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name,
		user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// GetByID busca un usuario por ID. Retorna nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy("id", id)
}

// FindByEmail busca un usuario por email. Retorna nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.getBy("email", email)
}

func (r *UserRepo) getBy(column, value string) (*entity.User, error) {
	ctx := context.Background()
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, name, role, status, created_at, updated_at
		FROM users WHERE %s = $1`, column)
	var u entity.User
	err := r.q.QueryRow(ctx, query, value).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name,
		&u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar usuario por %s: %w", column, err)
	}
	return &u, nil
}
