package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/application/ledger"
	"github.com/grocerflow/grocerflow-api/internal/domain"
	"github.com/grocerflow/grocerflow-api/internal/domain/entity"
	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria contra los puertos de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	txs      []*entity.StockTransaction
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

// sumStock calcula apertura + ΣIN − ΣOUT para un producto a partir del libro.
func (s *fakeStore) sumStock(productID string, opening int) int {
	total := opening
	for _, tx := range s.txs {
		if tx.ProductID != productID {
			continue
		}
		if tx.Type == entity.TxTypeIn {
			total += tx.Quantity
		} else {
			total -= tx.Quantity
		}
	}
	return total
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) CountByCategory(string) (int, error) { return 0, nil }
func (r *fakeProductRepo) CountBySupplier(string) (int, error) { return 0, nil }
func (r *fakeProductRepo) Delete(string) error                 { return nil }

type fakeTxRepo struct {
	s         *fakeStore
	failOnAdd bool // simula fallo de INSERT dentro de la transacción
}

func (r *fakeTxRepo) Create(tx *entity.StockTransaction) error {
	if r.failOnAdd {
		return assert.AnError
	}
	r.s.txs = append(r.s.txs, tx)
	return nil
}
func (r *fakeTxRepo) ListByProduct(productID string, limit int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for i := len(r.s.txs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.txs[i].ProductID == productID {
			out = append(out, r.s.txs[i])
		}
	}
	return out, nil
}
func (r *fakeTxRepo) CountByProduct(productID string) (int, error) {
	n := 0
	for _, tx := range r.s.txs {
		if tx.ProductID == productID {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner serializa los callbacks con un mutex, igual que el bloqueo de
// fila serializa dos movimientos concurrentes sobre el mismo producto. Si el
// callback falla, restaura el estado previo (rollback).
type fakeTxRunner struct {
	s         *fakeStore
	failOnAdd bool
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.StockTransactionRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// snapshot para rollback
	snapshot := make(map[string]entity.Product, len(r.s.products))
	for id, p := range r.s.products {
		snapshot[id] = *p
	}
	txCount := len(r.s.txs)

	err := fn(&fakeProductRepo{s: r.s}, &fakeTxRepo{s: r.s, failOnAdd: r.failOnAdd})
	if err != nil {
		for id := range r.s.products {
			cp := snapshot[id]
			r.s.products[id] = &cp
		}
		r.s.txs = r.s.txs[:txCount]
		return err
	}
	return nil
}

func newTestProduct(id string, stock, reorder int) *entity.Product {
	return &entity.Product{
		ID:           id,
		SKU:          "SKU-" + id,
		Name:         "Producto " + id,
		Unit:         "pcs",
		Price:        decimal.NewFromInt(10),
		ReorderLevel: reorder,
		Stock:        stock,
	}
}

func newUseCase(s *fakeStore) *ledger.ApplyTransactionUseCase {
	return ledger.NewApplyTransactionUseCase(&fakeTxRunner{s: s}, &fakeTxRepo{s: s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_INIncrementaStockYRegistraUnaTransaccion(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 10, 5))
	uc := newUseCase(s)

	out, err := uc.Apply(context.Background(), "p1", dto.ApplyTransactionRequest{
		Type: entity.TxTypeIn, Quantity: 7, Reference: "PO-001",
	})
	require.NoError(t, err)

	assert.Equal(t, 17, out.Stock, "el stock resultante debe ser 10 + 7")
	assert.Equal(t, 17, s.products["p1"].Stock)
	require.Len(t, s.txs, 1, "debe registrarse exactamente una transacción")
	assert.Equal(t, entity.TxTypeIn, s.txs[0].Type)
	assert.Equal(t, 7, s.txs[0].Quantity)
	assert.Equal(t, "PO-001", s.txs[0].Reference)
	assert.False(t, s.txs[0].TxDate.IsZero(), "la fecha la asigna el servidor")
}

func TestApply_OUTDecrementaStock(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 10, 5))
	uc := newUseCase(s)

	out, err := uc.Apply(context.Background(), "p1", dto.ApplyTransactionRequest{
		Type: entity.TxTypeOut, Quantity: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, out.Stock)
	assert.Equal(t, 6, s.products["p1"].Stock)
}

func TestApply_OUTInsuficiente_NoPersisteNada(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 3, 0))
	uc := newUseCase(s)

	_, err := uc.Apply(context.Background(), "p1", dto.ApplyTransactionRequest{
		Type: entity.TxTypeOut, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, s.products["p1"].Stock, "el stock no debe cambiar")
	assert.Empty(t, s.txs, "no debe registrarse ninguna transacción")
}

func TestApply_OUTExacto_DejaStockEnCero(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 5, 2))
	uc := newUseCase(s)

	out, err := uc.Apply(context.Background(), "p1", dto.ApplyTransactionRequest{
		Type: entity.TxTypeOut, Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock, "sacar exactamente el stock disponible es válido")
}

func TestApply_TipoInvalido(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 10, 0))
	uc := newUseCase(s)

	_, err := uc.Apply(context.Background(), "p1", dto.ApplyTransactionRequest{
		Type: "ADJUST", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_CantidadInvalida(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 10, 0))
	uc := newUseCase(s)

	for _, qty := range []int{0, -3} {
		_, err := uc.Apply(context.Background(), "p1", dto.ApplyTransactionRequest{
			Type: entity.TxTypeIn, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	assert.Empty(t, s.txs)
}

func TestApply_ProductoInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	_, err := uc.Apply(context.Background(), "nope", dto.ApplyTransactionRequest{
		Type: entity.TxTypeIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApply_FalloDelLibro_RevierteElStock(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 10, 0))
	uc := ledger.NewApplyTransactionUseCase(&fakeTxRunner{s: s, failOnAdd: true}, &fakeTxRepo{s: s})

	_, err := uc.Apply(context.Background(), "p1", dto.ApplyTransactionRequest{
		Type: entity.TxTypeIn, Quantity: 5,
	})
	require.Error(t, err)

	assert.Equal(t, 10, s.products["p1"].Stock, "si el alta del libro falla, el stock debe revertirse")
	assert.Empty(t, s.txs)
}

// Secuencia de ejemplo: apertura 10, OUT 4, IN 12, OUT 18 → 0, con IsLowStock
// cambiando según el nivel de reorden 5.
func TestApply_SecuenciaMantieneElInvariante(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 10, 5))
	uc := newUseCase(s)
	ctx := context.Background()

	out, err := uc.Apply(ctx, "p1", dto.ApplyTransactionRequest{Type: entity.TxTypeOut, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 6, out.Stock)

	out, err = uc.Apply(ctx, "p1", dto.ApplyTransactionRequest{Type: entity.TxTypeIn, Quantity: 12})
	require.NoError(t, err)
	assert.Equal(t, 18, out.Stock)

	out, err = uc.Apply(ctx, "p1", dto.ApplyTransactionRequest{Type: entity.TxTypeOut, Quantity: 18})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)

	// stock cacheado == apertura + ΣIN − ΣOUT
	assert.Equal(t, s.products["p1"].Stock, s.sumStock("p1", 10))
	assert.True(t, s.products["p1"].IsLowStock(), "stock 0 con reorden 5 debe estar bajo")
}

// Dos OUT concurrentes que juntos exceden el stock: exactamente uno debe
// confirmarse y el otro fallar con stock insuficiente.
func TestApply_OUTConcurrentes_SoloUnoConfirma(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 10, 0))
	uc := newUseCase(s)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Apply(context.Background(), "p1", dto.ApplyTransactionRequest{
				Type: entity.TxTypeOut, Quantity: 7,
			})
		}(i)
	}
	wg.Wait()

	okCount, insufficientCount := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case err == domain.ErrInsufficientStock:
			insufficientCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente un OUT debe confirmarse")
	assert.Equal(t, 1, insufficientCount, "el otro debe fallar por stock insuficiente")
	assert.Equal(t, 3, s.products["p1"].Stock)
	assert.Len(t, s.txs, 1)
	assert.Equal(t, s.products["p1"].Stock, s.sumStock("p1", 10))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests History
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_DevuelveLasTransaccionesDelProducto(t *testing.T) {
	s := newFakeStore(newTestProduct("p1", 100, 0), newTestProduct("p2", 100, 0))
	uc := newUseCase(s)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.Apply(ctx, "p1", dto.ApplyTransactionRequest{Type: entity.TxTypeOut, Quantity: 1})
		require.NoError(t, err)
	}
	_, err := uc.Apply(ctx, "p2", dto.ApplyTransactionRequest{Type: entity.TxTypeIn, Quantity: 9})
	require.NoError(t, err)

	out, err := uc.History("p1", 50)
	require.NoError(t, err)
	assert.Len(t, out.Items, 3, "solo las transacciones de p1")
	for _, item := range out.Items {
		assert.Equal(t, "p1", item.ProductID)
	}

	limited, err := uc.History("p1", 2)
	require.NoError(t, err)
	assert.Len(t, limited.Items, 2, "el límite debe respetarse")
}
