package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/domain"
	"github.com/grocerflow/grocerflow-api/internal/domain/entity"
	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD para productos.
// Stock se fija una sola vez en la creación (stock de apertura); después
// solo lo modifica el motor de transacciones. El borrado se rechaza mientras
// existan transacciones del producto.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	txRepo       repository.StockTransactionRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	txRepo repository.StockTransactionRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo, txRepo: txRepo}
}

// Create crea un producto con su stock de apertura.
// Devuelve ErrDuplicate si el SKU ya existe y ErrNotFound si la categoría o
// el proveedor referenciados no existen.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)
	if sku == "" || name == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.ReorderLevel < 0 || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(sku)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	categoryID, err := uc.resolveCategory(in.CategoryID)
	if err != nil {
		return nil, err
	}
	supplierID, err := uc.resolveSupplier(in.SupplierID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          sku,
		Name:         name,
		Unit:         unit,
		CategoryID:   categoryID,
		SupplierID:   supplierID,
		Price:        in.Price,
		ReorderLevel: in.ReorderLevel,
		Stock:        in.Stock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los datos de catálogo de un producto. Nunca toca Stock.
// Devuelve ErrDuplicate si otro producto ya usa el SKU.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetBySKU(sku)
		if existing != nil && existing.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
		product.SKU = sku
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Unit != nil {
		unit := strings.TrimSpace(*in.Unit)
		if unit == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = unit
	}
	if in.CategoryID != nil {
		categoryID, err := uc.resolveCategory(in.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
	}
	if in.SupplierID != nil {
		supplierID, err := uc.resolveSupplier(in.SupplierID)
		if err != nil {
			return nil, err
		}
		product.SupplierID = supplierID
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderLevel = *in.ReorderLevel
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos filtrando por substring de nombre/SKU y, opcionalmente,
// solo los bajos de stock.
func (uc *ProductUseCase) List(q string, onlyLow bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(repository.ProductFilter{
		Query:        strings.TrimSpace(q),
		OnlyLowStock: onlyLow,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. Devuelve ErrHasDependents si tiene transacciones.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.txRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(id)
}

// resolveCategory valida la referencia opcional a categoría ("" o nil = sin categoría).
func (uc *ProductUseCase) resolveCategory(id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	category, err := uc.categoryRepo.GetByID(*id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return id, nil
}

// resolveSupplier valida la referencia opcional a proveedor ("" o nil = sin proveedor).
func (uc *ProductUseCase) resolveSupplier(id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	supplier, err := uc.supplierRepo.GetByID(*id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return id, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Unit:         p.Unit,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		Price:        p.Price,
		ReorderLevel: p.ReorderLevel,
		Stock:        p.Stock,
		IsLowStock:   p.IsLowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
