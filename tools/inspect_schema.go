package main

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/localnerve/truckerdb/internal/models"
	"github.com/localnerve/truckerdb/internal/registry"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	// Auto-migrate to see what GORM creates
	err = db.AutoMigrate(
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
	)
	if err != nil {
		log.Fatal(err)
	}
	for _, table := range registry.DocumentTables() {
		if err := db.Table(table).AutoMigrate(&models.Document{}); err != nil {
			log.Fatal(err)
		}
	}

	// Get the schema
	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table'").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw(fmt.Sprintf("SELECT sql FROM sqlite_master WHERE name='%s'", table)).Scan(&schema)
		fmt.Println(schema)
	}
}
