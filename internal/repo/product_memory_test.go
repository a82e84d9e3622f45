package repo

import (
	"os"
	"testing"

	"github.com/rogerio-castellano/product-manager/internal/models"
	"github.com/rogerio-castellano/product-manager/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recorder results.Recorder = results.Nop{}

func TestMain(m *testing.M) {
	recorder = results.FromEnv()
	os.Exit(m.Run())
}

// record stores the outcome of the running test under scenario once it finishes.
func record(t *testing.T, scenario string) {
	t.Helper()
	t.Cleanup(func() {
		if err := recorder.Record(scenario, !t.Failed()); err != nil {
			t.Logf("could not record %s: %v", scenario, err)
		}
	})
}

func ptr[T any](v T) *T { return &v }

func sampleProduct() models.Product {
	return models.Product{
		Title:       "producto prueba",
		Description: "Este es un producto prueba",
		Price:       200,
		Thumbnail:   "Sin imagen",
		Code:        "abc123",
		Stock:       25,
	}
}

func firstAndSecond() (models.Product, models.Product) {
	p1 := models.Product{
		Title:       "producto prueba 1",
		Description: "Este es un producto prueba 1",
		Price:       100,
		Thumbnail:   "Sin imagen 1",
		Code:        "P001",
		Stock:       50,
	}
	p2 := models.Product{
		Title:       "producto prueba 2",
		Description: "Este es un producto prueba 2",
		Price:       200,
		Thumbnail:   "Sin imagen 2",
		Code:        "P002",
		Stock:       25,
	}
	return p1, p2
}

func TestGetProducts_EmptyAtStart(t *testing.T) {
	record(t, "getProducts")
	r := NewInMemoryProductRepository()

	products, err := r.GetProducts()
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGetProducts_ReturnsCopy(t *testing.T) {
	r := NewInMemoryProductRepository()
	_, err := r.AddProduct(sampleProduct())
	require.NoError(t, err)

	products, _ := r.GetProducts()
	products[0].Code = "tampered"
	products[0].ID = 42

	stored, err := r.GetProductByID(1)
	require.NoError(t, err)
	assert.Equal(t, "abc123", stored.Code)
}

func TestAddProduct_AssignsID(t *testing.T) {
	record(t, "addProduct")
	r := NewInMemoryProductRepository()

	product := sampleProduct()
	expected := product
	expected.ID = 1

	actual, err := r.AddProduct(product)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestAddProduct_IgnoresCallerID(t *testing.T) {
	r := NewInMemoryProductRepository()

	product := sampleProduct()
	product.ID = 99

	created, err := r.AddProduct(product)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestAddProduct_UniqueIDs(t *testing.T) {
	record(t, "addProductUniqueIds")
	r := NewInMemoryProductRepository()
	p1, p2 := firstAndSecond()

	actual1, err := r.AddProduct(p1)
	require.NoError(t, err)
	actual2, err := r.AddProduct(p2)
	require.NoError(t, err)

	p1.ID, p2.ID = 1, 2
	assert.Equal(t, p1, actual1)
	assert.Equal(t, p2, actual2)
	assert.NotEqual(t, actual1.ID, actual2.ID)
}

func TestAddProduct_ExistingCode(t *testing.T) {
	record(t, "addProductExistingCode")
	r := NewInMemoryProductRepository()

	first, err := r.AddProduct(sampleProduct())
	require.NoError(t, err)

	_, err = r.AddProduct(sampleProduct())
	require.ErrorIs(t, err, ErrDuplicateCode)
	assert.EqualError(t, err, "Ya existe un producto con ese código identificador")

	products, _ := r.GetProducts()
	assert.Equal(t, []models.Product{first}, products)
}

func TestAddProduct_IDsNotReusedAfterDelete(t *testing.T) {
	r := NewInMemoryProductRepository()
	p1, p2 := firstAndSecond()

	a, _ := r.AddProduct(p1)
	b, _ := r.AddProduct(p2)
	require.NoError(t, r.DeleteProduct(b.ID))

	p3 := sampleProduct()
	c, err := r.AddProduct(p3)
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 3, c.ID)
}

func TestAddProduct_CodeFreedByDelete(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, _ := r.AddProduct(sampleProduct())
	require.NoError(t, r.DeleteProduct(created.ID))

	again, err := r.AddProduct(sampleProduct())
	require.NoError(t, err)
	assert.Equal(t, 2, again.ID)
}

func TestGetProductByID(t *testing.T) {
	record(t, "getProductById")
	r := NewInMemoryProductRepository()
	p1, p2 := firstAndSecond()

	_, err := r.AddProduct(p1)
	require.NoError(t, err)
	expected, err := r.AddProduct(p2)
	require.NoError(t, err)

	actual, err := r.GetProductByID(expected.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, 2, actual.ID)
}

func TestGetProductByID_NotFound(t *testing.T) {
	record(t, "getProductByIdNotExist")
	r := NewInMemoryProductRepository()

	_, err := r.GetProductByID(1)
	require.ErrorIs(t, err, ErrProductNotFound)
	assert.EqualError(t, err, "Producto no encontrado")

	_, _ = r.AddProduct(sampleProduct())
	_, err = r.GetProductByID(2)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProductByCode(t *testing.T) {
	r := NewInMemoryProductRepository()
	p1, p2 := firstAndSecond()
	_, _ = r.AddProduct(p1)
	created, _ := r.AddProduct(p2)

	found, err := r.GetProductByCode("P002")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = r.GetProductByCode("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProduct_SingleField(t *testing.T) {
	record(t, "updateProduct")
	r := NewInMemoryProductRepository()

	created, err := r.AddProduct(sampleProduct())
	require.NoError(t, err)
	expected := created
	expected.Price = 250

	actual, err := r.UpdateProduct(created.ID, models.ProductPatch{Price: ptr(250.0)})
	require.NoError(t, err)
	assert.Equal(t, created.ID, actual.ID)
	assert.Equal(t, 250.0, actual.Price)
	assert.Equal(t, expected, actual)

	stored, err := r.GetProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, stored)
}

func TestUpdateProduct_KeepsPosition(t *testing.T) {
	r := NewInMemoryProductRepository()
	p1, p2 := firstAndSecond()
	a, _ := r.AddProduct(p1)
	b, _ := r.AddProduct(p2)

	_, err := r.UpdateProduct(a.ID, models.ProductPatch{Title: ptr("renamed"), Stock: ptr(0)})
	require.NoError(t, err)

	products, _ := r.GetProducts()
	require.Len(t, products, 2)
	assert.Equal(t, a.ID, products[0].ID)
	assert.Equal(t, "renamed", products[0].Title)
	assert.Equal(t, 0, products[0].Stock)
	assert.Equal(t, b, products[1])
}

func TestUpdateProduct_NotFound(t *testing.T) {
	record(t, "updateProductNotExist")
	r := NewInMemoryProductRepository()

	_, err := r.UpdateProduct(1, models.ProductPatch{Price: ptr(250.0)})
	require.ErrorIs(t, err, ErrProductNotFound)
	assert.EqualError(t, err, "Producto no encontrado")

	products, _ := r.GetProducts()
	assert.Empty(t, products)
}

func TestUpdateProduct_DuplicateCode(t *testing.T) {
	r := NewInMemoryProductRepository()
	p1, p2 := firstAndSecond()
	_, _ = r.AddProduct(p1)
	b, _ := r.AddProduct(p2)

	_, err := r.UpdateProduct(b.ID, models.ProductPatch{Code: ptr("P001"), Price: ptr(1.0)})
	require.ErrorIs(t, err, ErrDuplicateCode)

	stored, _ := r.GetProductByID(b.ID)
	assert.Equal(t, b, stored)
}

func TestUpdateProduct_SameCodeAllowed(t *testing.T) {
	r := NewInMemoryProductRepository()
	created, _ := r.AddProduct(sampleProduct())

	updated, err := r.UpdateProduct(created.ID, models.ProductPatch{Code: ptr("abc123"), Stock: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, "abc123", updated.Code)
	assert.Equal(t, 3, updated.Stock)
}

func TestUpdateProduct_EmptyPatch(t *testing.T) {
	r := NewInMemoryProductRepository()
	created, _ := r.AddProduct(sampleProduct())

	updated, err := r.UpdateProduct(created.ID, models.ProductPatch{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestDeleteProduct(t *testing.T) {
	record(t, "deleteProduct")
	r := NewInMemoryProductRepository()

	created, err := r.AddProduct(sampleProduct())
	require.NoError(t, err)

	products, _ := r.GetProducts()
	assert.Equal(t, []models.Product{created}, products)

	require.NoError(t, r.DeleteProduct(created.ID))

	products, _ = r.GetProducts()
	assert.Empty(t, products)
}

func TestDeleteProduct_KeepsOrderOfRest(t *testing.T) {
	r := NewInMemoryProductRepository()
	p1, p2 := firstAndSecond()
	a, _ := r.AddProduct(p1)
	b, _ := r.AddProduct(p2)
	c, _ := r.AddProduct(sampleProduct())

	require.NoError(t, r.DeleteProduct(b.ID))

	products, _ := r.GetProducts()
	assert.Equal(t, []models.Product{a, c}, products)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	record(t, "deleteProductNotExist")
	r := NewInMemoryProductRepository()

	err := r.DeleteProduct(1)
	require.ErrorIs(t, err, ErrProductNotFound)
	assert.EqualError(t, err, "Producto no encontrado")

	created, _ := r.AddProduct(sampleProduct())
	assert.ErrorIs(t, r.DeleteProduct(created.ID+1), ErrProductNotFound)
	products, _ := r.GetProducts()
	assert.Len(t, products, 1)
}

func TestFilter(t *testing.T) {
	r := NewInMemoryProductRepository()
	for _, p := range []models.Product{
		{Title: "Phone", Code: "PH1", Price: 699.99, Stock: 10},
		{Title: "Laptop", Code: "LP1", Price: 1299.99, Stock: 5},
		{Title: "Mouse", Code: "MS1", Price: 29.99, Stock: 50},
		{Title: "Monitor", Code: "MN1", Price: 199.99, Stock: 20},
	} {
		_, err := r.AddProduct(p)
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		filter    ProductFilter
		wantCodes []string
		wantTotal int
	}{
		{name: "by title", filter: ProductFilter{Title: "mo"}, wantCodes: []string{"MS1", "MN1"}, wantTotal: 2},
		{name: "by code", filter: ProductFilter{Code: "lp1"}, wantCodes: []string{"LP1"}, wantTotal: 1},
		{name: "by price range", filter: ProductFilter{MinPrice: ptr(100.0), MaxPrice: ptr(1000.0)}, wantCodes: []string{"PH1", "MN1"}, wantTotal: 2},
		{name: "by stock range", filter: ProductFilter{MinStock: ptr(5), MaxStock: ptr(20)}, wantCodes: []string{"PH1", "LP1", "MN1"}, wantTotal: 3},
		{name: "no match", filter: ProductFilter{Title: "xyz"}, wantCodes: []string{}, wantTotal: 0},
		{name: "limit and offset", filter: ProductFilter{Offset: ptr(1), Limit: ptr(2)}, wantCodes: []string{"LP1", "MS1"}, wantTotal: 4},
		{name: "offset past end", filter: ProductFilter{Offset: ptr(999), Limit: ptr(10)}, wantCodes: []string{}, wantTotal: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := r.Filter(tt.filter)
			require.NoError(t, err)

			codes := []string{}
			for _, p := range got {
				codes = append(codes, p.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestClear_KeepsCounter(t *testing.T) {
	r := NewInMemoryProductRepository()
	_, _ = r.AddProduct(sampleProduct())
	r.Clear()

	products, _ := r.GetProducts()
	assert.Empty(t, products)

	created, err := r.AddProduct(sampleProduct())
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
}
