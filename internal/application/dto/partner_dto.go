package dto

import "time"

// PartnerRequest body común para crear/actualizar clientes y proveedores.
type PartnerRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PartnerResponse cliente o proveedor para listados y detalle.
type PartnerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationRequest body para crear ubicaciones.
type LocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// LocationResponse ubicación para listados.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
