package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	api "github.com/rogerio-castellano/product-manager/internal/http"
	handler "github.com/rogerio-castellano/product-manager/internal/http/handlers"
	"github.com/rogerio-castellano/product-manager/internal/auth"
	"github.com/rogerio-castellano/product-manager/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminUsername = "admin"
	adminPassword = "secret"
	jwtSecret     = "test-secret"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	metricsRepo *repo.InMemoryMetricsRepository
	authService *auth.Service
)

func init() {
	setupTestRepos(adminPassword)
	r := newRouter()

	var err error
	token, err = generateToken(r, adminUsername, adminPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	metricsRepo = repo.NewInMemoryMetricsRepository(productRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	authService = auth.NewService(jwtSecret, adminUsername, string(hash), time.Hour)
}

func newServer() *handler.Server {
	return handler.NewServer(productRepo, metricsRepo, authService, nil)
}

func newRouter() http.Handler {
	return api.NewRouter(newServer(), api.Options{})
}

func clearAllProducts() {
	productRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createdProduct(r http.Handler, p handler.ProductRequest) (handler.ProductResponse, error) {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		return handler.ProductResponse{}, fmt.Errorf("product creation failed: %d %s", w.Code, w.Body.String())
	}
	var resp handler.ProductResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}

func updateProduct(r http.Handler, method string, productID int, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, fmt.Sprintf("/products/%d", productID), bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func deleteProduct(r http.Handler, productID int) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", productID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func importCSV(r http.Handler, csvContent, mode string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csvContent, "products.csv")
	target := "/products/import"
	if mode != "" {
		target += "?mode=" + mode
	}
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
