package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// Ensure ProductRepo implements repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementa la persistencia de productos sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository crea el repositorio de productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta un producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	ctx := context.Background()
	query := `
		INSERT INTO products (id, sku, name, description, price, cost, perishable, stock_cache, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Description,
		product.Price, product.Cost, product.Perishable, product.StockCache,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

// GetByID busca un producto por ID. Retorna nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy("id", id)
}

// GetBySKU busca un producto por SKU. Retorna nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getBy("sku", sku)
}

func (r *ProductRepo) getBy(column, value string) (*entity.Product, error) {
	ctx := context.Background()
	query := fmt.Sprintf(`
		SELECT id, sku, name, description, price, cost, perishable, stock_cache, created_at, updated_at
		FROM products WHERE %s = $1`, column)
	var p entity.Product
	err := r.q.QueryRow(ctx, query, value).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Cost,
		&p.Perishable, &p.StockCache, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar producto por %s=%s: %w", column, value, err)
	}
	return &p, nil
}

// Update actualiza los datos editables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	ctx := context.Background()
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, perishable = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.Perishable, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar producto %s: %w", product.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCost actualiza el costo de última compra.
func (r *ProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	ctx := context.Background()
	query := `UPDATE products SET cost = $2, updated_at = NOW() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, productID, cost); err != nil {
		return fmt.Errorf("actualizar costo del producto %s: %w", productID, err)
	}
	return nil
}

// UpdateStockCache refresca el contador desnormalizado de stock.
func (r *ProductRepo) UpdateStockCache(productID string, quantity int64) error {
	ctx := context.Background()
	query := `UPDATE products SET stock_cache = $2, updated_at = NOW() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, productID, quantity); err != nil {
		return fmt.Errorf("actualizar stock cache del producto %s: %w", productID, err)
	}
	return nil
}

// List lista productos paginados por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	ctx := context.Background()
	query := `
		SELECT id, sku, name, description, price, cost, perishable, stock_cache, created_at, updated_at
		FROM products
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Cost,
			&p.Perishable, &p.StockCache, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("escanear producto: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar productos: %w", err)
	}
	return products, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	ctx := context.Background()
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar producto %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
