package handlers

import (
	"strings"

	"github.com/rogerio-castellano/product-manager/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, ProductValidationError{Field: "Title", Description: "Title is required"})
	}
	if strings.TrimSpace(p.Code) == "" {
		errs = append(errs, ProductValidationError{Field: "Code", Description: "Code is required"})
	}
	if p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	return errs
}

// validatePatch checks only the fields present in the patch.
func validatePatch(p models.ProductPatch) []ProductValidationError {
	errs := []ProductValidationError{}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs = append(errs, ProductValidationError{Field: "Title", Description: "Title cannot be blank"})
	}
	if p.Code != nil && strings.TrimSpace(*p.Code) == "" {
		errs = append(errs, ProductValidationError{Field: "Code", Description: "Code cannot be blank"})
	}
	if p.Price != nil && *p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.Stock != nil && *p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	return errs
}
