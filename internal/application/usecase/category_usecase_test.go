package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/application/usecase"
	"github.com/grocerflow/grocerflow-api/internal/domain"
	"github.com/grocerflow/grocerflow-api/internal/domain/entity"
)

func newCategoryUC() (*usecase.CategoryUseCase, *memCategoryRepo, *memProductRepo) {
	categories := newMemCategoryRepo()
	products := newMemProductRepo()
	return usecase.NewCategoryUseCase(categories, products), categories, products
}

func TestCategoryCreate_Ok(t *testing.T) {
	uc, _, _ := newCategoryUC()

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "  Lácteos  "})
	require.NoError(t, err)
	assert.Equal(t, "Lácteos", out.Name, "el nombre debe llegar sin espacios")
	assert.NotEmpty(t, out.ID)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	uc, _, _ := newCategoryUC()

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "la unicidad de nombre es case-insensitive")
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	uc, _, _ := newCategoryUC()

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_Renombra(t *testing.T) {
	uc, _, _ := newCategoryUC()

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Abarrotes"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Name: "Granos"})
	require.NoError(t, err)
	assert.Equal(t, "Granos", out.Name)
}

func TestCategoryUpdate_MismoNombrePropio_NoEsDuplicado(t *testing.T) {
	uc, _, _ := newCategoryUC()

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Limpieza"})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateCategoryRequest{Name: "Limpieza"})
	assert.NoError(t, err, "renombrar al mismo nombre no debe chocar consigo misma")
}

func TestCategoryUpdate_NoEncontrada(t *testing.T) {
	uc, _, _ := newCategoryUC()

	out, err := uc.Update("nope", dto.UpdateCategoryRequest{Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, out, "categoría inexistente devuelve nil (el handler mapea 404)")
}

func TestCategoryDelete_BloqueadoConProductos(t *testing.T) {
	uc, _, products := newCategoryUC()

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Snacks"})
	require.NoError(t, err)

	catID := created.ID
	products.items["p1"] = &entity.Product{ID: "p1", SKU: "S1", Name: "Papas", CategoryID: &catID}

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrHasDependents)

	// Sigue existiendo
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestCategoryDelete_SinProductos_Ok(t *testing.T) {
	uc, _, _ := newCategoryUC()

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Temporal"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCategoryDelete_NoEncontrada(t *testing.T) {
	uc, _, _ := newCategoryUC()
	assert.ErrorIs(t, uc.Delete("nope"), domain.ErrNotFound)
}

func TestCategoryList_FiltraYOrdena(t *testing.T) {
	uc, _, _ := newCategoryUC()

	for _, name := range []string{"Bebidas", "Abarrotes", "Lácteos"} {
		_, err := uc.Create(dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	out, err := uc.List("", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "Abarrotes", out.Items[0].Name, "orden alfabético ascendente")

	filtered, err := uc.List("beb", 20, 0)
	require.NoError(t, err)
	require.Len(t, filtered.Items, 1)
	assert.Equal(t, "Bebidas", filtered.Items[0].Name)
}
