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

// Ensure LocationRepo implements repository.LocationRepository.
var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementa la persistencia de ubicaciones sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository crea el repositorio de ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create inserta una ubicación.
func (r *LocationRepo) Create(location *entity.Location) error {
	ctx := context.Background()
	query := `INSERT INTO locations (id, name, address, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, location.ID, location.Name, location.Address, location.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar ubicación: %w", err)
	}
	return nil
}

// GetByID busca una ubicación por ID. Retorna nil si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	ctx := context.Background()
	query := `SELECT id, name, address, created_at FROM locations WHERE id = $1`
	var loc entity.Location
	err := r.q.QueryRow(ctx, query, id).Scan(&loc.ID, &loc.Name, &loc.Address, &loc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar ubicación %s: %w", id, err)
	}
	return &loc, nil
}

// List lista todas las ubicaciones por nombre.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	ctx := context.Background()
	query := `SELECT id, name, address, created_at FROM locations ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar ubicaciones: %w", err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		var loc entity.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.CreatedAt); err != nil {
			return nil, fmt.Errorf("escanear ubicación: %w", err)
		}
		locations = append(locations, &loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar ubicaciones: %w", err)
	}
	return locations, nil
}
