package repo

import (
	"strings"

	"github.com/rogerio-castellano/product-manager/internal/models"
)

type ProductFilter struct {
	Title    string
	Code     string
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
	MaxStock *int
	Offset   *int
	Limit    *int
}

func (pf ProductFilter) matches(p models.Product) bool {
	if pf.Title != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(pf.Title)) {
		return false
	}
	if pf.Code != "" && !strings.EqualFold(p.Code, pf.Code) {
		return false
	}
	if pf.MinPrice != nil && p.Price < *pf.MinPrice {
		return false
	}
	if pf.MaxPrice != nil && p.Price > *pf.MaxPrice {
		return false
	}
	if pf.MinStock != nil && p.Stock < *pf.MinStock {
		return false
	}
	if pf.MaxStock != nil && p.Stock > *pf.MaxStock {
		return false
	}
	return true
}

// page slices an already filtered result according to Offset and Limit.
func (pf ProductFilter) page(filtered []models.Product) []models.Product {
	if pf.Offset != nil && *pf.Offset > len(filtered) {
		return []models.Product{}
	}

	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if pf.Limit != nil && *pf.Limit > 0 {
		end = clamp(start+*pf.Limit, start, len(filtered))
	}

	return filtered[start:end]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
