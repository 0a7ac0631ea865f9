package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// Ensure ProductLotRepo implements repository.ProductLotRepository.
var _ repository.ProductLotRepository = (*ProductLotRepo)(nil)

// ProductLotRepo implementa la persistencia de lotes sobre PostgreSQL.
type ProductLotRepo struct {
	q Querier
}

// NewProductLotRepository crea el repositorio de lotes.
func NewProductLotRepository(q Querier) *ProductLotRepo {
	return &ProductLotRepo{q: q}
}

// Create inserta un lote.
func (r *ProductLotRepo) Create(lot *entity.ProductLot) error {
	ctx := context.Background()
	query := `
		INSERT INTO product_lots (id, code, product_id, expires_on, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, lot.ID, lot.Code, lot.ProductID, lot.ExpiresOn, lot.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("lote con código %s ya existe para el producto: %w", lot.Code, err)
		}
		return fmt.Errorf("insertar lote: %w", err)
	}
	return nil
}

// GetByID busca un lote por ID. Retorna nil si no existe.
func (r *ProductLotRepo) GetByID(id string) (*entity.ProductLot, error) {
	ctx := context.Background()
	query := `SELECT id, code, product_id, expires_on, created_at FROM product_lots WHERE id = $1`
	var lot entity.ProductLot
	err := r.q.QueryRow(ctx, query, id).Scan(&lot.ID, &lot.Code, &lot.ProductID, &lot.ExpiresOn, &lot.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar lote %s: %w", id, err)
	}
	return &lot, nil
}

// ListByProduct lista los lotes del producto, vencimiento ascendente con
// NULL al final.
func (r *ProductLotRepo) ListByProduct(productID string) ([]*entity.ProductLot, error) {
	ctx := context.Background()
	query := `
		SELECT id, code, product_id, expires_on, created_at
		FROM product_lots
		WHERE product_id = $1
		ORDER BY expires_on ASC NULLS LAST, id ASC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("listar lotes del producto %s: %w", productID, err)
	}
	defer rows.Close()

	var lots []*entity.ProductLot
	for rows.Next() {
		var lot entity.ProductLot
		if err := rows.Scan(&lot.ID, &lot.Code, &lot.ProductID, &lot.ExpiresOn, &lot.CreatedAt); err != nil {
			return nil, fmt.Errorf("escanear lote: %w", err)
		}
		lots = append(lots, &lot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar lotes: %w", err)
	}
	return lots, nil
}

// LockByProduct toma FOR UPDATE sobre las filas de lotes del producto. Dos
// asignaciones concurrentes sobre el mismo producto se serializan aquí; la
// segunda ve los débitos de la primera al leer saldos.
func (r *ProductLotRepo) LockByProduct(productID string) error {
	ctx := context.Background()
	query := `SELECT id FROM product_lots WHERE product_id = $1 FOR UPDATE`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("bloquear lotes del producto %s: %w", productID, err)
	}
	defer rows.Close()
	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("bloquear lotes del producto %s: %w", productID, err)
	}
	return nil
}
