package repo

import (
	"errors"

	"github.com/rogerio-castellano/product-manager/internal/models"
)

var (
	// ErrProductNotFound is returned when no product has the requested ID.
	ErrProductNotFound = errors.New("Producto no encontrado")

	// ErrDuplicateCode is returned when another product already holds the code.
	ErrDuplicateCode = errors.New("Ya existe un producto con ese código identificador")
)

// ProductRepository defines the interface for product catalog operations.
type ProductRepository interface {
	GetProducts() ([]models.Product, error)
	AddProduct(product models.Product) (models.Product, error)
	GetProductByID(id int) (models.Product, error)
	GetProductByCode(code string) (models.Product, error)
	UpdateProduct(id int, patch models.ProductPatch) (models.Product, error)
	DeleteProduct(id int) error
	Filter(pf ProductFilter) ([]models.Product, int, error)
}
