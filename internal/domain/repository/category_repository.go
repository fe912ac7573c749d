package repository

import "github.com/grocerflow/grocerflow-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List filtra por substring de nombre (case-insensitive) y ordena por nombre ascendente.
	List(q string, limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}
