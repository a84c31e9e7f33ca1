package integration_test

import (
	"context"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/localnerve/truckerdb/internal/config"
	"github.com/localnerve/truckerdb/internal/database"
	"github.com/localnerve/truckerdb/internal/handlers"
	"github.com/localnerve/truckerdb/internal/models"
	"github.com/localnerve/truckerdb/internal/registry"
	"github.com/localnerve/truckerdb/internal/services"
	"github.com/localnerve/truckerdb/internal/storage"
)

// TestWithMariaDB tests the service against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("TruckLifecycle", func(t *testing.T) {
		testTruckLifecycle(t, db)
	})

	t.Run("UpdateAffectsStoredRow", func(t *testing.T) {
		testUpdateAffectsStoredRow(t, db)
	})

	t.Run("CascadeDeleteRemovesDocuments", func(t *testing.T) {
		testCascadeDeleteRemovesDocuments(t, db)
	})

	t.Run("HandlerRoundTrip", func(t *testing.T) {
		testHandlerRoundTrip(t, db)
	})
}

// TestWithPostgreSQL tests the service against a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("POSTGRES_IMAGE"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	// Get container host and port
	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("TruckLifecycle", func(t *testing.T) {
		testTruckLifecycle(t, db)
	})

	t.Run("UpdateAffectsStoredRow", func(t *testing.T) {
		testUpdateAffectsStoredRow(t, db)
	})

	t.Run("HandlerRoundTrip", func(t *testing.T) {
		testHandlerRoundTrip(t, db)
	})
}

// testTruckLifecycle creates, reads and deletes a truck through the store.
func testTruckLifecycle(t *testing.T, db *gorm.DB) {
	files := storage.NewStore(t.TempDir())
	store := services.NewStore[models.Truck](db, files, registry.Describe("trucks"))

	truck := models.Truck{
		TruckNumber:  "INT-1001",
		VehicleUnder: "Al Faris",
		Country:      "UAE",
	}
	if err := store.Create(&truck); err != nil {
		t.Fatalf("Failed to create truck: %v", err)
	}

	// Duplicate plate number must conflict
	if err := store.Create(&truck); err != services.ErrConflict {
		t.Errorf("Expected ErrConflict on duplicate plate, got: %v", err)
	}

	got, err := store.Get("INT-1001")
	if err != nil {
		t.Fatalf("Failed to get truck: %v", err)
	}
	if got.VehicleUnder != "Al Faris" {
		t.Errorf("Expected vehicle_under 'Al Faris', got %q", got.VehicleUnder)
	}

	if err := store.Delete("INT-1001"); err != nil {
		t.Fatalf("Failed to delete truck: %v", err)
	}
	if _, err := store.Get("INT-1001"); err != services.ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got: %v", err)
	}
}

// testUpdateAffectsStoredRow verifies a full replace clears omitted columns.
func testUpdateAffectsStoredRow(t *testing.T, db *gorm.DB) {
	files := storage.NewStore(t.TempDir())
	store := services.NewStore[models.Trailer](db, files, registry.Describe("trailers"))

	value := int64(90000)
	trailer := models.Trailer{
		TrailerNo:    "INT-TR-7",
		CompanyUnder: "Al Faris",
		AssetValue:   &value,
	}
	if err := store.Create(&trailer); err != nil {
		t.Fatalf("Failed to create trailer: %v", err)
	}

	// Replace without asset_value; the column must be cleared.
	replacement := models.Trailer{CompanyUnder: "Gulf Haulage"}
	if err := store.Update("INT-TR-7", &replacement); err != nil {
		t.Fatalf("Failed to update trailer: %v", err)
	}

	got, err := store.Get("INT-TR-7")
	if err != nil {
		t.Fatalf("Failed to get trailer: %v", err)
	}
	if got.CompanyUnder != "Gulf Haulage" {
		t.Errorf("Expected company_under 'Gulf Haulage', got %q", got.CompanyUnder)
	}
	if got.AssetValue != nil {
		t.Errorf("Expected asset_value cleared, got %v", *got.AssetValue)
	}

	// Updating a missing key reports not found.
	if err := store.Update("INT-TR-MISSING", &replacement); err != services.ErrNotFound {
		t.Errorf("Expected ErrNotFound for missing trailer, got: %v", err)
	}
}

// testCascadeDeleteRemovesDocuments verifies the entity delete removes
// attachment rows and files.
func testCascadeDeleteRemovesDocuments(t *testing.T, db *gorm.DB) {
	files := storage.NewStore(t.TempDir())
	schema := registry.Describe("employees")
	store := services.NewStore[models.Employee](db, files, schema)
	docs := services.NewDocuments(db, files, schema)

	salary, visa, advance := int64(3000), int64(0), int64(500)
	emp := models.Employee{
		Name:            "Int Driver",
		Salary:          &salary,
		VisaOutstanding: &visa,
		AdvanceAvl:      &advance,
		VisaUnder:       "Al Faris",
		Nationality:     "Indian",
	}
	if err := store.Create(&emp); err != nil {
		t.Fatalf("Failed to create employee: %v", err)
	}

	if _, err := docs.Upload("Int Driver", "visa", "visa.pdf", strings.NewReader("pdf-bytes")); err != nil {
		t.Fatalf("Failed to upload document: %v", err)
	}
	path, _, err := docs.Resolve("Int Driver", "visa")
	if err != nil {
		t.Fatalf("Failed to resolve document: %v", err)
	}

	if err := store.Delete("Int Driver"); err != nil {
		t.Fatalf("Failed to delete employee: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected document file removed, stat err: %v", err)
	}
	if _, err := docs.List("Int Driver"); err != services.ErrNotFound {
		t.Errorf("Expected no documents after cascade delete, got: %v", err)
	}
}

// testHandlerRoundTrip exercises the HTTP surface against the real database.
func testHandlerRoundTrip(t *testing.T, db *gorm.DB) {
	files := storage.NewStore(t.TempDir())

	app := fiber.New()
	api := app.Group("/api")
	handlers.RegisterRoutes(api, db, files)

	// Create a client
	body := strings.NewReader(`{"name":"Int Freight LLC","address":"Jebel Ali"}`)
	req := httptest.NewRequest("POST", "/api/clients", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	// Name appears in the dropdown lookup
	req = httptest.NewRequest("GET", "/api/clients/names", nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	// Missing record is a 404
	req = httptest.NewRequest("GET", "/api/clients/No%20Such%20Client", nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("Expected 404, got %d", resp.StatusCode)
	}
}

// TestHealthCheck tests the health check functionality
func TestHealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:     "mysql",
		DBHost:     host,
		DBPort:     port.Port(),
		DBDatabase: "testdb",
		DBUser:     "testuser",
		DBPassword: "testpass",
	}

	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run health check
	result := services.HealthCheck(cfg, db)

	if result.Database != "ok" {
		t.Errorf("Expected database to be ok, got: %s", result.Database)
	}
	if result.Status != "healthy" {
		t.Errorf("Expected status to be healthy, got: %s", result.Status)
	}
}
