package usecase_test

import (
	"sort"
	"strings"

	"github.com/grocerflow/grocerflow-api/internal/domain/entity"
	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
)

// Fakes en memoria contra los puertos de repositorio.

type memCategoryRepo struct {
	items map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{items: make(map[string]*entity.Category)}
}

func (r *memCategoryRepo) Create(c *entity.Category) error { r.items[c.ID] = c; return nil }
func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.items {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCategoryRepo) Update(c *entity.Category) error { r.items[c.ID] = c; return nil }
func (r *memCategoryRepo) List(q string, limit, offset int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.items {
		if q == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(q)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}
func (r *memCategoryRepo) Delete(id string) error { delete(r.items, id); return nil }

type memSupplierRepo struct {
	items map[string]*entity.Supplier
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{items: make(map[string]*entity.Supplier)}
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error { r.items[s.ID] = s; return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *memSupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	for _, s := range r.items {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, nil
}
func (r *memSupplierRepo) Update(s *entity.Supplier) error { r.items[s.ID] = s; return nil }
func (r *memSupplierRepo) List(q string, limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.items {
		if q == "" || strings.Contains(strings.ToLower(s.Name), strings.ToLower(q)) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}
func (r *memSupplierRepo) Delete(id string) error { delete(r.items, id); return nil }

type memProductRepo struct {
	items map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error { r.items[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *memProductRepo) Update(p *entity.Product) error                  { r.items[p.ID] = p; return nil }
func (r *memProductRepo) UpdateStock(id string, stock int) error {
	if p, ok := r.items[id]; ok {
		p.Stock = stock
	}
	return nil
}
func (r *memProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	q := strings.ToLower(filter.Query)
	for _, p := range r.items {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.SKU), q) {
			continue
		}
		if filter.OnlyLowStock && !p.IsLowStock() {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, filter.Limit, filter.Offset), nil
}
func (r *memProductRepo) CountByCategory(categoryID string) (int, error) {
	n := 0
	for _, p := range r.items {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}
func (r *memProductRepo) CountBySupplier(supplierID string) (int, error) {
	n := 0
	for _, p := range r.items {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.items, id); return nil }

type memTxRepo struct {
	txs []*entity.StockTransaction
}

func (r *memTxRepo) Create(tx *entity.StockTransaction) error { r.txs = append(r.txs, tx); return nil }
func (r *memTxRepo) ListByProduct(productID string, limit int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for i := len(r.txs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.txs[i].ProductID == productID {
			out = append(out, r.txs[i])
		}
	}
	return out, nil
}
func (r *memTxRepo) CountByProduct(productID string) (int, error) {
	n := 0
	for _, tx := range r.txs {
		if tx.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func page[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
