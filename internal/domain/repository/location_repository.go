package repository

import "github.com/jhoicas/Pos-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para ubicaciones (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List() ([]*entity.Location, error)
}
