package repo

import (
	"sync"

	"github.com/rogerio-castellano/product-manager/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order. IDs come from a counter that only grows,
// so an ID is never handed out twice even after its product is deleted.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new, empty InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// GetProducts returns a copy of all products in insertion order.
func (r *InMemoryProductRepository) GetProducts() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// AddProduct assigns the next ID to the product and appends it to the catalog.
// Any ID set by the caller is overwritten.
func (r *InMemoryProductRepository) AddProduct(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByCode(product.Code) >= 0 {
		return models.Product{}, ErrDuplicateCode
	}

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetProductByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetProductByID(id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByID(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// GetProductByCode retrieves a product by its code.
func (r *InMemoryProductRepository) GetProductByCode(code string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByCode(code)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// UpdateProduct writes the patch over the stored product, keeping its ID and position.
// Changing the code to one held by another product fails with ErrDuplicateCode.
func (r *InMemoryProductRepository) UpdateProduct(id int, patch models.ProductPatch) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}

	if patch.Code != nil {
		if j := r.indexByCode(*patch.Code); j >= 0 && j != i {
			return models.Product{}, ErrDuplicateCode
		}
	}

	updated := patch.Apply(r.products[i])
	updated.ID = id
	r.products[i] = updated
	return updated, nil
}

// DeleteProduct removes a product from the catalog by its ID.
func (r *InMemoryProductRepository) DeleteProduct(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// Filter returns the page of products matching pf and the total number of matches.
func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range r.products {
		if pf.matches(p) {
			filtered = append(filtered, p)
		}
	}

	return pf.page(filtered), len(filtered), nil
}

// Clear drops every product. The ID counter keeps running.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}

func (r *InMemoryProductRepository) indexByID(id int) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *InMemoryProductRepository) indexByCode(code string) int {
	for i, p := range r.products {
		if p.Code == code {
			return i
		}
	}
	return -1
}
