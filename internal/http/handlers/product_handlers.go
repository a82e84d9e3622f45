package handlers

import (
	"net/http"

	models "github.com/rogerio-castellano/product-manager/internal/models"
	repo "github.com/rogerio-castellano/product-manager/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog. The id is assigned by the server.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 409 {string} string "Duplicate code"
// @Router /products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		s.respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := s.Products.AddProduct(models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		Code:        req.Code,
		Stock:       req.Stock,
	})
	if err != nil {
		s.repoError(w, err, "create product")
		return
	}

	s.respond(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List all products
// @Description Products are returned in the order they were added.
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.Products.GetProducts()
	if err != nil {
		s.repoError(w, err, "fetch products")
		return
	}
	s.respond(w, http.StatusOK, toProductResponses(products))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := s.Products.GetProductByID(id)
	if err != nil {
		s.repoError(w, err, "fetch product")
		return
	}
	s.respond(w, http.StatusOK, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Overwrites only the fields present in the body. The id never changes.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param patch body models.ProductPatch true "Fields to overwrite"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Duplicate code"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [patch]
// @Router /products/{id} [put]
// @Security BearerAuth
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var patch models.ProductPatch
	if err := readJSON(w, r, &patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validatePatch(patch); len(validationErrors) > 0 {
		s.respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := s.Products.UpdateProduct(id, patch)
	if err != nil {
		s.repoError(w, err, "update product")
		return
	}
	s.respond(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
// @Security BearerAuth
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if err := s.Products.DeleteProduct(id); err != nil {
		s.repoError(w, err, "delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FilterProductsHandler godoc
// @Summary Filter and paginate products
// @Tags products
// @Produce json
// @Param title query string false "Title contains (case-insensitive)"
// @Param code query string false "Exact code (case-insensitive)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minStock query int false "Minimum stock"
// @Param maxStock query int false "Maximum stock"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /products/search [get]
func (s *Server) FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, total, err := s.Products.Filter(filter)
	if err != nil {
		s.repoError(w, err, "filter products")
		return
	}

	s.respond(w, http.StatusOK, ProductsSearchResult{
		Data: toProductResponses(products),
		Meta: Meta{TotalCount: total},
	})
}

type queryError string

func (e queryError) Error() string { return string(e) }

func parseFilter(r *http.Request) (repo.ProductFilter, error) {
	q := r.URL.Query()
	filter := repo.ProductFilter{
		Title: q.Get("title"),
		Code:  q.Get("code"),
	}

	var err error
	if filter.MinPrice, err = parseFloatPtr(q.Get("minPrice")); err != nil {
		return filter, queryError("minPrice must be a number")
	}
	if filter.MaxPrice, err = parseFloatPtr(q.Get("maxPrice")); err != nil {
		return filter, queryError("maxPrice must be a number")
	}
	if filter.MinStock, err = parseIntPtr(q.Get("minStock")); err != nil {
		return filter, queryError("minStock must be an integer")
	}
	if filter.MaxStock, err = parseIntPtr(q.Get("maxStock")); err != nil {
		return filter, queryError("maxStock must be an integer")
	}
	if filter.Offset, err = parseIntPtr(q.Get("offset")); err != nil {
		return filter, queryError("offset must be an integer")
	}
	if filter.Limit, err = parseIntPtr(q.Get("limit")); err != nil {
		return filter, queryError("limit must be an integer")
	}

	if filter.Limit != nil && *filter.Limit <= 0 {
		return filter, queryError("limit must be greater than zero")
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		return filter, queryError("offset must be zero or positive")
	}
	return filter, nil
}
