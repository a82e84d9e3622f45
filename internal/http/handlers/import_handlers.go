package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	models "github.com/rogerio-castellano/product-manager/internal/models"
	repo "github.com/rogerio-castellano/product-manager/internal/repo"
)

const (
	importModeSkip   = "skip"
	importModeUpdate = "update"
)

type csvRow struct {
	Title       string
	Description string
	Price       string
	Thumbnail   string
	Code        string
	Stock       string
}

// parseCSV reads a header line followed by product rows. Title and code columns are required.
func parseCSV(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"title", "code"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing %s column", required)
		}
	}

	column := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			Title:       column(record, "title"),
			Description: column(record, "description"),
			Price:       column(record, "price"),
			Thumbnail:   column(record, "thumbnail"),
			Code:        column(record, "code"),
			Stock:       column(record, "stock"),
		})
	}
	return rows, nil
}

func (c csvRow) toRequest() (ProductRequest, error) {
	req := ProductRequest{
		Title:       c.Title,
		Description: c.Description,
		Thumbnail:   c.Thumbnail,
		Code:        c.Code,
	}
	if c.Price != "" {
		price, err := strconv.ParseFloat(c.Price, 64)
		if err != nil {
			return req, errors.New("invalid price")
		}
		req.Price = price
	}
	if c.Stock != "" {
		stock, err := strconv.Atoi(c.Stock)
		if err != nil {
			return req, errors.New("invalid stock")
		}
		req.Stock = stock
	}
	return req, nil
}

func rowError(rowNum int, format string, args ...any) ProductValidationError {
	return ProductValidationError{
		Field:       fmt.Sprintf("row %d", rowNum),
		Description: fmt.Sprintf(format, args...),
	}
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Rows are keyed by code. In skip mode an existing code is reported; in update mode the product is overwritten.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
// @Security BearerAuth
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != importModeUpdate {
		mode = importModeSkip
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportProductsResult{Errors: []ProductValidationError{}}
	for i, row := range rows {
		rowNum := i + 2 // header is row 1

		req, err := row.toRequest()
		if err != nil {
			result.Errors = append(result.Errors, rowError(rowNum, "%v", err))
			continue
		}
		if validationErrors := validateProduct(req); len(validationErrors) > 0 {
			for _, ve := range validationErrors {
				result.Errors = append(result.Errors, rowError(rowNum, "%s", ve.Description))
			}
			continue
		}

		if err := s.importRow(req, mode); err != nil {
			if !errors.Is(err, repo.ErrDuplicateCode) && !errors.Is(err, repo.ErrProductNotFound) {
				s.Log.Sugar().Errorw("import row failed", "row", rowNum, "code", req.Code, "error", err)
			}
			result.Errors = append(result.Errors, rowError(rowNum, "%s: %v", req.Code, err))
			continue
		}
		result.ImportedProductsCount++
	}

	s.Log.Sugar().Infow("products imported", "mode", mode, "imported", result.ImportedProductsCount, "errors", len(result.Errors))
	s.respond(w, http.StatusOK, result)
}

func (s *Server) importRow(req ProductRequest, mode string) error {
	existing, err := s.Products.GetProductByCode(req.Code)
	switch {
	case err == nil:
		if mode == importModeSkip {
			return repo.ErrDuplicateCode
		}
		_, err = s.Products.UpdateProduct(existing.ID, models.ProductPatch{
			Title:       &req.Title,
			Description: &req.Description,
			Price:       &req.Price,
			Thumbnail:   &req.Thumbnail,
			Stock:       &req.Stock,
		})
		return err
	case errors.Is(err, repo.ErrProductNotFound):
		_, err = s.Products.AddProduct(models.Product{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			Thumbnail:   req.Thumbnail,
			Code:        req.Code,
			Stock:       req.Stock,
		})
		return err
	default:
		return err
	}
}
