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

// Ensure CustomerRepo implements repository.CustomerRepository.
var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementa la persistencia de clientes sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository crea el repositorio de clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create inserta un cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	ctx := context.Background()
	query := `
		INSERT INTO customers (id, name, tax_id, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.TaxID, customer.Email,
		customer.Phone, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar cliente: %w", err)
	}
	return nil
}

// GetByID busca un cliente por ID. Retorna nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	ctx := context.Background()
	query := `SELECT id, name, tax_id, email, phone, created_at, updated_at FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar cliente %s: %w", id, err)
	}
	return &c, nil
}

// Update actualiza los datos del cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	ctx := context.Background()
	query := `
		UPDATE customers
		SET name = $2, tax_id = $3, email = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.TaxID, customer.Email,
		customer.Phone, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar cliente %s: %w", customer.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista clientes paginados por nombre.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	ctx := context.Background()
	query := `
		SELECT id, name, tax_id, email, phone, created_at, updated_at
		FROM customers ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("escanear cliente: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar clientes: %w", err)
	}
	return customers, nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	ctx := context.Background()
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar cliente %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
