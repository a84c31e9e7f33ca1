// register.go
//
// A record-keeping data service for a trucking business
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of truckerdb.
// truckerdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// truckerdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with truckerdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/localnerve/truckerdb/internal/models"
	"github.com/localnerve/truckerdb/internal/registry"
	"github.com/localnerve/truckerdb/internal/services"
	"github.com/localnerve/truckerdb/internal/storage"
)

// RegisterRoutes wires every record, document and lookup route onto the api
// group. Literal lookup paths are registered before the keyed resource
// routes so names like "company-fault" are never captured as record keys.
func RegisterRoutes(api fiber.Router, db *gorm.DB, files *storage.Store) {
	validate := newValidator()
	lookups := &LookupHandler{DB: db}

	api.Get("/drivers", lookups.Drivers)
	api.Get("/company-under", lookups.CompanyNames)
	api.Get("/trucks-num", lookups.TruckNumbers)
	api.Get("/other-trucks-num", lookups.OtherTruckNumbers)
	api.Get("/trucks/by-driver/:driver", lookups.TrucksByDriver)
	api.Get("/other-trucks/by-driver/:driver", lookups.OtherTrucksByDriver)
	api.Get("/clients/names", lookups.ClientNames)
	api.Get("/suppliers/names/code", lookups.SupplierNames)
	api.Get("/employees/:name/salary", lookups.EmployeeSalary)
	api.Get("/employees/:name/visa-outstanding", lookups.EmployeeVisaOutstanding)
	api.Get("/employees/:name/advance-available", lookups.EmployeeAdvanceAvailable)
	api.Get("/salaries/by-employee/:name", lookups.SalariesByEmployee)
	api.Get("/salaries/by-month/:month", lookups.SalariesByMonth)
	api.Get("/fines/by-truck/:truck", lookups.FinesByTruck)
	api.Get("/fines/by-driver/:driver", lookups.FinesByDriver)
	api.Get("/fines/company-fault", lookups.CompanyFaultFines)

	// Fleet and people records, all with typed document slots.
	for _, e := range []struct {
		entity, label string
	}{
		{"employees", "Employee"},
		{"other-employees", "Other employee"},
		{"trucks", "Truck"},
		{"other-trucks", "Other truck"},
		{"trailers", "Trailer"},
		{"other-trailers", "Other trailer"},
	} {
		schema := registry.Describe(e.entity)
		g := mountByEntity(api, db, files, validate, schema, e.label)
		mountTypedDocs(g, db, files, schema, e.label)
	}

	// Business partner records, no attachments.
	mountByEntity(api, db, files, validate, registry.Describe("clients"), "Client")
	mountByEntity(api, db, files, validate, registry.Describe("suppliers"), "Supplier")
	mountByEntity(api, db, files, validate, registry.Describe("other-owners"), "Other owner")

	// Companies are a bare name list; there is nothing to update.
	companySchema := registry.Describe("companies")
	companyStore := services.NewStore[models.Company](db, files, companySchema)
	company := NewResource[models.Company](companyStore, validate, "Company")
	cg := api.Group("/" + companySchema.Name)
	cg.Get("/", company.List)
	cg.Post("/", company.Create)
	cg.Get("/:key", company.Get)
	cg.Delete("/:key", company.Delete)

	// Maintenance recomputes the total from the payment channels on update.
	maintSchema := registry.Describe("maintenance")
	maintStore := services.NewStore[models.Maintenance](db, files, maintSchema).
		OnUpdate(func(m *models.Maintenance) { m.ComputeTotal() })
	maint := NewResource[models.Maintenance](maintStore, validate, "Maintenance record")
	mg := mountResource(api, maint, maintSchema.Name, true)
	mountReceipts(mg, db, files, maintSchema, "Maintenance record", "/upload")

	// Legacy front ends address maintenance as /truck-maintenance.
	mgLegacy := mountResource(api, maint, "truck-maintenance", true)
	mountReceipts(mgLegacy, db, files, maintSchema, "Maintenance record", "/upload")

	fineSchema := registry.Describe("fines")
	fg := mountByEntity(api, db, files, validate, fineSchema, "Fine")
	mountReceipts(fg, db, files, fineSchema, "Fine", "/upload")

	salarySchema := registry.Describe("salaries")
	sg := mountByEntity(api, db, files, validate, salarySchema, "Salary record")
	mountReceipts(sg, db, files, salarySchema, "Salary record", "")

	mountByEntity(api, db, files, validate, registry.Describe("trips"), "Trip")
	mountByEntity(api, db, files, validate, registry.Describe("inventory"), "Inventory item")
	mountByEntity(api, db, files, validate, registry.Describe("investors"), "Investor")
	mountByEntity(api, db, files, validate, registry.Describe("investor1-accounts"), "Investor account")
	mountByEntity(api, db, files, validate, registry.Describe("investor2-accounts"), "Investor account")
}

// mountByEntity builds the store and resource for a schema and registers the
// standard CRUD routes, returning the route group for further wiring.
func mountByEntity(api fiber.Router, db *gorm.DB, files *storage.Store, validate *validator.Validate, schema registry.Schema, label string) fiber.Router {
	switch schema.Name {
	case "employees":
		return mountResource(api, NewResource[models.Employee](services.NewStore[models.Employee](db, files, schema), validate, label), schema.Name, true)
	case "other-employees":
		return mountResource(api, NewResource[models.OtherEmployee](services.NewStore[models.OtherEmployee](db, files, schema), validate, label), schema.Name, true)
	case "trucks":
		return mountResource(api, NewResource[models.Truck](services.NewStore[models.Truck](db, files, schema), validate, label), schema.Name, true)
	case "other-trucks":
		return mountResource(api, NewResource[models.OtherTruck](services.NewStore[models.OtherTruck](db, files, schema), validate, label), schema.Name, true)
	case "trailers":
		return mountResource(api, NewResource[models.Trailer](services.NewStore[models.Trailer](db, files, schema), validate, label), schema.Name, true)
	case "other-trailers":
		return mountResource(api, NewResource[models.OtherTrailer](services.NewStore[models.OtherTrailer](db, files, schema), validate, label), schema.Name, true)
	case "clients":
		return mountResource(api, NewResource[models.Client](services.NewStore[models.Client](db, files, schema), validate, label), schema.Name, true)
	case "suppliers":
		return mountResource(api, NewResource[models.Supplier](services.NewStore[models.Supplier](db, files, schema), validate, label), schema.Name, true)
	case "other-owners":
		return mountResource(api, NewResource[models.OtherOwner](services.NewStore[models.OtherOwner](db, files, schema), validate, label), schema.Name, true)
	case "fines":
		return mountResource(api, NewResource[models.Fine](services.NewStore[models.Fine](db, files, schema), validate, label), schema.Name, true)
	case "salaries":
		return mountResource(api, NewResource[models.Salary](services.NewStore[models.Salary](db, files, schema), validate, label), schema.Name, true)
	case "trips":
		return mountResource(api, NewResource[models.Trip](services.NewStore[models.Trip](db, files, schema), validate, label), schema.Name, true)
	case "inventory":
		return mountResource(api, NewResource[models.InventoryItem](services.NewStore[models.InventoryItem](db, files, schema), validate, label), schema.Name, true)
	case "investors":
		return mountResource(api, NewResource[models.Investor](services.NewStore[models.Investor](db, files, schema), validate, label), schema.Name, true)
	case "investor1-accounts":
		return mountResource(api, NewResource[models.Investor1Account](services.NewStore[models.Investor1Account](db, files, schema), validate, label), schema.Name, true)
	case "investor2-accounts":
		return mountResource(api, NewResource[models.Investor2Account](services.NewStore[models.Investor2Account](db, files, schema), validate, label), schema.Name, true)
	}
	panic("handlers: no model bound for entity " + schema.Name)
}

// mountResource registers the standard CRUD routes for a resource.
func mountResource[T any](api fiber.Router, res *Resource[T], entity string, withUpdate bool) fiber.Router {
	g := api.Group("/" + entity)
	g.Get("/", res.List)
	g.Post("/", res.Create)
	g.Get("/:key", res.Get)
	if withUpdate {
		g.Put("/:key", res.Update)
	}
	g.Delete("/:key", res.Delete)
	return g
}

// mountTypedDocs registers the typed document slot routes on an entity group.
func mountTypedDocs(g fiber.Router, db *gorm.DB, files *storage.Store, schema registry.Schema, label string) {
	dh := NewDocumentHandler(services.NewDocuments(db, files, schema), label)
	g.Get("/:key/documents", dh.List)
	g.Get("/:key/documents/:type", dh.View)
	g.Post("/:key/documents/:type/upload", dh.Upload)
	g.Delete("/:key/documents/:type", dh.Delete)
}

// mountReceipts registers the single-receipt document routes on an entity
// group. uploadSuffix is "/upload" or "" depending on the legacy route shape.
func mountReceipts(g fiber.Router, db *gorm.DB, files *storage.Store, schema registry.Schema, label, uploadSuffix string) {
	dh := NewDocumentHandler(services.NewDocuments(db, files, schema), label)
	g.Get("/:key/documents", dh.List)
	g.Get("/:key/documents/view", dh.View)
	g.Post("/:key/documents"+uploadSuffix, dh.Upload)
	g.Delete("/:key/documents", dh.Delete)
}

// newValidator builds the request validator, reporting violations by the
// JSON field names clients actually send.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
