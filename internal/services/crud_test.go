package services_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/localnerve/truckerdb/internal/models"
	"github.com/localnerve/truckerdb/internal/registry"
	"github.com/localnerve/truckerdb/internal/services"
	"github.com/localnerve/truckerdb/internal/storage"
	"github.com/localnerve/truckerdb/internal/types"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.OtherEmployee{},
		&models.Truck{},
		&models.OtherTruck{},
		&models.Trailer{},
		&models.OtherTrailer{},
		&models.Client{},
		&models.Supplier{},
		&models.OtherOwner{},
		&models.Company{},
		&models.Maintenance{},
		&models.Fine{},
		&models.Salary{},
		&models.Trip{},
		&models.InventoryItem{},
		&models.Investor{},
		&models.Investor1Account{},
		&models.Investor2Account{},
	))
	for _, table := range registry.DocumentTables() {
		require.NoError(t, db.Table(table).AutoMigrate(&models.Document{}))
	}
	return db
}

func int64p(v int64) *int64 { return &v }

func decp(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func testEmployee(name string) models.Employee {
	return models.Employee{
		Name:            name,
		Salary:          int64p(3000),
		VisaOutstanding: int64p(0),
		AdvanceAvl:      int64p(500),
		VisaUnder:       "Al Faris",
		Nationality:     "Indian",
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore[models.Employee](db, storage.NewStore(t.TempDir()), registry.Describe("employees"))

	emp := testEmployee("Ramesh Kumar")
	require.NoError(t, store.Create(&emp))

	got, err := store.Get("Ramesh Kumar")
	require.NoError(t, err)
	assert.Equal(t, "Al Faris", got.VisaUnder)
	require.NotNil(t, got.Salary)
	assert.EqualValues(t, 3000, *got.Salary)

	// Zero values on required numeric columns round-trip intact.
	require.NotNil(t, got.VisaOutstanding)
	assert.EqualValues(t, 0, *got.VisaOutstanding)
}

func TestCreateDuplicateKeyConflicts(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore[models.Employee](db, storage.NewStore(t.TempDir()), registry.Describe("employees"))

	emp := testEmployee("Ramesh Kumar")
	require.NoError(t, store.Create(&emp))

	dup := testEmployee("Ramesh Kumar")
	assert.ErrorIs(t, store.Create(&dup), services.ErrConflict)
}

func TestGetMissingIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore[models.Truck](db, storage.NewStore(t.TempDir()), registry.Describe("trucks"))

	_, err := store.Get("Z9999")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListEmptyTableYieldsEmptySlice(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore[models.Trip](db, storage.NewStore(t.TempDir()), registry.Describe("trips"))

	trips, err := store.List()
	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestUpdateReplacesAllColumns(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore[models.Trailer](db, storage.NewStore(t.TempDir()), registry.Describe("trailers"))

	trailer := models.Trailer{
		TrailerNo:    "TR-100",
		CompanyUnder: "Al Faris",
		AssetValue:   int64p(80000),
	}
	require.NoError(t, store.Create(&trailer))

	// The replacement omits asset_value; a full replace must clear it.
	replacement := models.Trailer{CompanyUnder: "Gulf Haulage"}
	require.NoError(t, store.Update("TR-100", &replacement))

	got, err := store.Get("TR-100")
	require.NoError(t, err)
	assert.Equal(t, "Gulf Haulage", got.CompanyUnder)
	assert.Nil(t, got.AssetValue)
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore[models.Trailer](db, storage.NewStore(t.TempDir()), registry.Describe("trailers"))

	replacement := models.Trailer{CompanyUnder: "Gulf Haulage"}
	assert.ErrorIs(t, store.Update("TR-MISSING", &replacement), services.ErrNotFound)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore[models.Fine](db, storage.NewStore(t.TempDir()), registry.Describe("fines"))

	assert.ErrorIs(t, store.Delete(int64(12345)), services.ErrNotFound)
}

func TestMaintenanceUpdateRecomputesTotal(t *testing.T) {
	db := setupTestDB(t)
	store := services.NewStore[models.Maintenance](db, storage.NewStore(t.TempDir()), registry.Describe("maintenance")).
		OnUpdate(func(m *models.Maintenance) { m.ComputeTotal() })

	row := models.Maintenance{
		Date:       types.NewDate(2025, time.June, 1),
		CreditCard: decp(100),
		Bank:       decp(50),
		Cash:       decp(25),
		VAT:        decp(10),
		Total:      decp(999), // create stores the caller's total as supplied
		Status:     "PAID",
	}
	require.NoError(t, store.Create(&row))

	created, err := store.Get(row.ID)
	require.NoError(t, err)
	assert.True(t, created.Total.Equal(decimal.NewFromInt(999)))

	// Update recomputes the total from the channels, ignoring the client value.
	update := models.Maintenance{
		Date:       types.NewDate(2025, time.June, 1),
		CreditCard: decp(100),
		Bank:       decp(50),
		Cash:       decp(25),
		VAT:        decp(10),
		Total:      decp(5),
		Status:     "PAID",
	}
	require.NoError(t, store.Update(row.ID, &update))

	got, err := store.Get(row.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Total)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(185)), "total = %s", got.Total)
}

func TestDeleteCascadesDocumentsAndFiles(t *testing.T) {
	db := setupTestDB(t)
	files := storage.NewStore(t.TempDir())
	schema := registry.Describe("employees")
	store := services.NewStore[models.Employee](db, files, schema)
	docs := services.NewDocuments(db, files, schema)

	emp := testEmployee("Ramesh Kumar")
	require.NoError(t, store.Create(&emp))

	_, err := docs.Upload("Ramesh Kumar", "visa", "visa.pdf", strings.NewReader("visa-bytes"))
	require.NoError(t, err)
	_, err = docs.Upload("Ramesh Kumar", "license", "license.pdf", strings.NewReader("license-bytes"))
	require.NoError(t, err)

	visaPath, _, err := docs.Resolve("Ramesh Kumar", "visa")
	require.NoError(t, err)

	require.NoError(t, store.Delete("Ramesh Kumar"))

	_, err = store.Get("Ramesh Kumar")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = docs.List("Ramesh Kumar")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = os.Stat(visaPath)
	assert.True(t, os.IsNotExist(err))
}
