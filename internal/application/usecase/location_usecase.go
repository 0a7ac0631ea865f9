package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// LocationUseCase alta y listado de ubicaciones de stock.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create persiste una ubicación nueva.
func (uc *LocationUseCase) Create(in dto.LocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return locationResponse(location), nil
}

// List devuelve todas las ubicaciones.
func (uc *LocationUseCase) List() ([]*dto.LocationResponse, error) {
	locations, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, locationResponse(l))
	}
	return out, nil
}

func locationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{ID: l.ID, Name: l.Name, Address: l.Address, CreatedAt: l.CreatedAt}
}
