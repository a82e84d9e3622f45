package handlers_integrated_test_suite

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rogerio-castellano/product-manager/internal/auth"
	"github.com/rogerio-castellano/product-manager/internal/db"
	api "github.com/rogerio-castellano/product-manager/internal/http"
	handler "github.com/rogerio-castellano/product-manager/internal/http/handlers"
	"github.com/rogerio-castellano/product-manager/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token       string
	router      http.Handler
	productRepo *repo.PostgresProductRepository
	database    *sql.DB
)

// TestMain runs the suite against DATABASE_URL and skips it when the variable is unset.
func TestMain(m *testing.M) {
	dbUrl := os.Getenv("DATABASE_URL")
	if dbUrl == "" {
		fmt.Println("DATABASE_URL not set, skipping integrated handler tests")
		os.Exit(0)
	}

	var err error
	database, err = db.Connect(dbUrl)
	if err != nil {
		fmt.Printf("could not connect to database: %v\n", err)
		os.Exit(1)
	}
	if err := db.Migrate(database); err != nil {
		fmt.Printf("could not migrate database: %v\n", err)
		os.Exit(1)
	}

	productRepo = repo.NewPostgresProductRepository(database)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	authSvc := auth.NewService("integration-secret", "admin", string(hash), time.Hour)
	server := handler.NewServer(productRepo, repo.NewPostgresMetricsRepository(database), authSvc, nil)
	router = api.NewRouter(server, api.Options{})

	token, err = generateToken(router, "admin", "secret")
	if err != nil {
		fmt.Printf("error generating token: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	database.Close()
	os.Exit(code)
}

func clearAllProducts() {
	if _, err := database.Exec("TRUNCATE products RESTART IDENTITY"); err != nil {
		panic(fmt.Sprintf("error clearing products: %v", err))
	}
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

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

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
