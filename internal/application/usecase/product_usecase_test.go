package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/application/usecase"
	"github.com/grocerflow/grocerflow-api/internal/domain"
	"github.com/grocerflow/grocerflow-api/internal/domain/entity"
)

func newProductUC() (*usecase.ProductUseCase, *memProductRepo, *memCategoryRepo, *memSupplierRepo, *memTxRepo) {
	products := newMemProductRepo()
	categories := newMemCategoryRepo()
	suppliers := newMemSupplierRepo()
	txs := &memTxRepo{}
	uc := usecase.NewProductUseCase(products, categories, suppliers, txs)
	return uc, products, categories, suppliers, txs
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func TestProductCreate_ConStockDeApertura(t *testing.T) {
	uc, _, _, _, _ := newProductUC()

	out, err := uc.Create(dto.CreateProductRequest{
		SKU: "ARROZ-1K", Name: "Arroz 1kg", Unit: "pcs",
		Price: decimal.NewFromFloat(2.50), ReorderLevel: 5, Stock: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, 40, out.Stock, "el stock de apertura se fija en la creación")
	assert.False(t, out.IsLowStock)
	assert.True(t, out.Price.Equal(decimal.NewFromFloat(2.50)))
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, _, _, _, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{SKU: "X-1", Name: "Uno", Unit: "pcs"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "X-1", Name: "Otro", Unit: "pcs"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _, _, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{
		SKU: "X-1", Name: "Uno", Unit: "pcs", CategoryID: strptr("nope"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_ReferenciasValidas(t *testing.T) {
	uc, _, categories, suppliers, _ := newProductUC()

	categories.items["c1"] = &entity.Category{ID: "c1", Name: "Granos"}
	suppliers.items["s1"] = &entity.Supplier{ID: "s1", Name: "Distribuidora Sur"}

	out, err := uc.Create(dto.CreateProductRequest{
		SKU: "X-1", Name: "Uno", Unit: "pcs",
		CategoryID: strptr("c1"), SupplierID: strptr("s1"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.CategoryID)
	assert.Equal(t, "c1", *out.CategoryID)
	require.NotNil(t, out.SupplierID)
	assert.Equal(t, "s1", *out.SupplierID)
}

func TestProductCreate_DatosInvalidos(t *testing.T) {
	uc, _, _, _, _ := newProductUC()

	cases := []dto.CreateProductRequest{
		{SKU: "", Name: "Uno", Unit: "pcs"},
		{SKU: "X", Name: "  ", Unit: "pcs"},
		{SKU: "X", Name: "Uno", Unit: ""},
		{SKU: "X", Name: "Uno", Unit: "pcs", Price: decimal.NewFromInt(-1)},
		{SKU: "X", Name: "Uno", Unit: "pcs", ReorderLevel: -1},
		{SKU: "X", Name: "Uno", Unit: "pcs", Stock: -5},
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v debe rechazarse", in)
	}
}

func TestProductUpdate_NuncaTocaElStock(t *testing.T) {
	uc, products, _, _, _ := newProductUC()

	created, err := uc.Create(dto.CreateProductRequest{
		SKU: "X-1", Name: "Uno", Unit: "pcs", Stock: 33,
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  strptr("Uno renombrado"),
		Price: decimalPtr(decimal.NewFromInt(9)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Uno renombrado", out.Name)
	assert.Equal(t, 33, out.Stock, "la edición de catálogo no modifica el stock")
	assert.Equal(t, 33, products.items[created.ID].Stock)
}

func TestProductUpdate_CamposParciales(t *testing.T) {
	uc, _, _, _, _ := newProductUC()

	created, err := uc.Create(dto.CreateProductRequest{
		SKU: "X-1", Name: "Uno", Unit: "pcs", ReorderLevel: 4,
	})
	require.NoError(t, err)

	// Solo cambia el nivel de reorden; el resto queda igual.
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{ReorderLevel: intptr(9)})
	require.NoError(t, err)
	assert.Equal(t, 9, out.ReorderLevel)
	assert.Equal(t, "Uno", out.Name)
	assert.Equal(t, "X-1", out.SKU)
}

func TestProductUpdate_SKUDeOtroProducto(t *testing.T) {
	uc, _, _, _, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{SKU: "A-1", Name: "A", Unit: "pcs"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateProductRequest{SKU: "B-1", Name: "B", Unit: "pcs"})
	require.NoError(t, err)

	_, err = uc.Update(b.ID, dto.UpdateProductRequest{SKU: strptr("A-1")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Reafirmar el propio SKU sí es válido.
	_, err = uc.Update(b.ID, dto.UpdateProductRequest{SKU: strptr("B-1")})
	assert.NoError(t, err)
}

func TestProductDelete_BloqueadoConTransacciones(t *testing.T) {
	uc, _, _, _, txs := newProductUC()

	created, err := uc.Create(dto.CreateProductRequest{SKU: "X-1", Name: "Uno", Unit: "pcs"})
	require.NoError(t, err)

	txs.txs = append(txs.txs, &entity.StockTransaction{
		ID: "t1", ProductID: created.ID, Type: entity.TxTypeIn, Quantity: 1, TxDate: time.Now(),
	})

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrHasDependents)
}

func TestProductDelete_SinTransacciones_Ok(t *testing.T) {
	uc, _, _, _, _ := newProductUC()

	created, err := uc.Create(dto.CreateProductRequest{SKU: "X-1", Name: "Uno", Unit: "pcs"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductList_SoloBajosDeStock(t *testing.T) {
	uc, _, _, _, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{SKU: "A-1", Name: "Bajo", Unit: "pcs", ReorderLevel: 10, Stock: 3})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{SKU: "B-1", Name: "Sano", Unit: "pcs", ReorderLevel: 10, Stock: 50})
	require.NoError(t, err)
	// Nivel de reorden 0 desactiva la alerta aunque el stock sea 0.
	_, err = uc.Create(dto.CreateProductRequest{SKU: "C-1", Name: "Sin alerta", Unit: "pcs", ReorderLevel: 0, Stock: 0})
	require.NoError(t, err)

	out, err := uc.List("", true, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Bajo", out.Items[0].Name)
	assert.True(t, out.Items[0].IsLowStock)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
