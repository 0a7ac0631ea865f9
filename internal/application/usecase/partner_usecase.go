package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create persiste un cliente nuevo.
func (uc *CustomerUseCase) Create(in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// Update modifica un cliente existente.
func (uc *CustomerUseCase) Update(id string, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.TaxID = in.TaxID
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// List pagina los clientes.
func (uc *CustomerUseCase) List(page dto.PageRequest) ([]*dto.PartnerResponse, error) {
	page.DefaultPage()
	customers, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartnerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, customerResponse(c))
	}
	return out, nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func customerResponse(c *entity.Customer) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID: c.ID, Name: c.Name, TaxID: c.TaxID, Email: c.Email, Phone: c.Phone,
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create persiste un proveedor nuevo.
func (uc *SupplierUseCase) Create(in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// Update modifica un proveedor existente.
func (uc *SupplierUseCase) Update(id string, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplier.Name = in.Name
	supplier.TaxID = in.TaxID
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// List pagina los proveedores.
func (uc *SupplierUseCase) List(page dto.PageRequest) ([]*dto.PartnerResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartnerResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplierResponse(s))
	}
	return out, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func supplierResponse(s *entity.Supplier) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID: s.ID, Name: s.Name, TaxID: s.TaxID, Email: s.Email, Phone: s.Phone,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}
