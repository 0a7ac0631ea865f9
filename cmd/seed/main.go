// seed puebla la base con datos de demostración: un admin, una ubicación, un
// proveedor, tres productos y una orden de compra recibida que deja lotes con
// vencimientos escalonados (útil para probar la asignación FEFO a mano).
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/application/auth"
	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/purchasing"
	"github.com/jhoicas/Pos-api/internal/application/usecase"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Pos-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	receiveUC := purchasing.NewReceiveUseCase(txRunner, orderRepo, supplierRepo, productRepo)

	admin, err := authUC.RegisterUser(dto.RegisterRequest{
		Email:    "admin@pos.local",
		Password: "admin1234",
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		fail("crear admin", err)
	}
	fmt.Printf("Admin creado: %s (admin@pos.local / admin1234)\n", admin.ID)

	if _, err := locationUC.Create(dto.LocationRequest{Name: "Sala de ventas"}); err != nil {
		fail("crear ubicación", err)
	}

	supplier, err := supplierUC.Create(dto.PartnerRequest{Name: "Distribuidora Central", TaxID: "900123456-7"})
	if err != nil {
		fail("crear proveedor", err)
	}

	type demoProduct struct {
		sku, name  string
		price      decimal.Decimal
		perishable bool
	}
	demo := []demoProduct{
		{"YOG-001", "Yogur natural 1L", decimal.NewFromFloat(3.50), true},
		{"LEC-001", "Leche entera 1L", decimal.NewFromFloat(1.20), true},
		{"ARR-001", "Arroz 1kg", decimal.NewFromFloat(2.10), false},
	}

	now := time.Now()
	lines := make([]dto.PurchaseOrderLineRequest, 0, len(demo))
	for i, d := range demo {
		p, err := productUC.Create(dto.CreateProductRequest{
			SKU: d.sku, Name: d.name, Price: d.price, Perishable: d.perishable,
		})
		if err != nil {
			fail("crear producto "+d.sku, err)
		}
		fmt.Printf("Producto creado: %s (%s)\n", p.Name, p.ID)

		line := dto.PurchaseOrderLineRequest{
			ProductID: p.ID,
			Quantity:  int64(20 + 10*i),
			UnitCost:  d.price.Div(decimal.NewFromInt(2)),
			LotCode:   fmt.Sprintf("L-2026-%03d", i+1),
		}
		if d.perishable {
			// Vencimientos escalonados para que el recorrido FEFO sea visible.
			exp := now.AddDate(0, 0, 7*(i+1))
			line.ExpiresOn = &exp
		}
		lines = append(lines, line)
	}

	order, err := receiveUC.CreateOrder(ctx, admin.ID, dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID,
		Lines:      lines,
	})
	if err != nil {
		fail("crear orden de compra", err)
	}
	if err := receiveUC.ReceiveOrder(ctx, order.ID, admin.ID); err != nil {
		fail("recibir orden de compra", err)
	}
	fmt.Printf("Orden %s recibida: lotes y stock inicial cargados\n", order.ID)
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
