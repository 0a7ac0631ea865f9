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

// Ensure SupplierRepo implements repository.SupplierRepository.
var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementa la persistencia de proveedores sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository crea el repositorio de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create inserta un proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	ctx := context.Background()
	query := `
		INSERT INTO suppliers (id, name, tax_id, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.TaxID, supplier.Email,
		supplier.Phone, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar proveedor: %w", err)
	}
	return nil
}

// GetByID busca un proveedor por ID. Retorna nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	ctx := context.Background()
	query := `SELECT id, name, tax_id, email, phone, created_at, updated_at FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.TaxID, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar proveedor %s: %w", id, err)
	}
	return &s, nil
}

// Update actualiza los datos del proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	ctx := context.Background()
	query := `
		UPDATE suppliers
		SET name = $2, tax_id = $3, email = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.TaxID, supplier.Email,
		supplier.Phone, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar proveedor %s: %w", supplier.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista proveedores paginados por nombre.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	ctx := context.Background()
	query := `
		SELECT id, name, tax_id, email, phone, created_at, updated_at
		FROM suppliers ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.TaxID, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("escanear proveedor: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar proveedores: %w", err)
	}
	return suppliers, nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	ctx := context.Background()
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar proveedor %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
