package repository

import "github.com/grocerflow/grocerflow-api/internal/domain/entity"

// ProductFilter filtros para el listado de productos.
type ProductFilter struct {
	Query        string // substring sobre nombre o SKU (case-insensitive)
	OnlyLowStock bool   // reorder_level > 0 AND stock <= reorder_level
	Limit        int
	Offset       int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update nunca modifica Stock; UpdateStock es exclusivo del motor de transacciones
// y solo tiene sentido dentro de la misma transacción que el GetForUpdate previo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate lee el producto bloqueando su fila (SELECT ... FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int) error
	// List ordena por nombre ascendente.
	List(filter ProductFilter) ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)
	CountBySupplier(supplierID string) (int, error)
	Delete(id string) error
}
