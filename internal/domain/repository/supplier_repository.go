package repository

import "github.com/grocerflow/grocerflow-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	// List filtra por substring de nombre (case-insensitive) y ordena por nombre ascendente.
	List(q string, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
