// lookups.go
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
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/hints"

	"github.com/localnerve/truckerdb/internal/models"
	"github.com/localnerve/truckerdb/internal/utils"
)

// LookupHandler serves the narrow projection and filter queries the front
// end uses to populate dropdowns and report screens.
type LookupHandler struct {
	DB *gorm.DB
}

// DriverRef is a driver dropdown entry.
type DriverRef struct {
	Employee  string  `json:"employee"`
	ReferedAs *string `json:"refered_as"`
}

// Drivers handles GET /drivers
// @Summary List employees with the driver designation
// @Tags Lookups
// @Produce json
// @Success 200 {array} handlers.DriverRef
// @Router /drivers [get]
func (h *LookupHandler) Drivers(c *fiber.Ctx) error {
	refs := make([]DriverRef, 0)
	err := h.DB.Model(&models.Employee{}).
		Clauses(hints.CommentBefore("select", "lookup drivers")).
		Select("employee", "refered_as").
		Where("designation = ?", "driver").
		Find(&refs).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "drivers")
	}
	return utils.SuccessResponse(c, refs, fiber.StatusOK)
}

// CompanyNames handles GET /company-under
// @Summary List sponsoring company names
// @Tags Lookups
// @Produce json
// @Success 200 {array} string
// @Router /company-under [get]
func (h *LookupHandler) CompanyNames(c *fiber.Ctx) error {
	names := make([]string, 0)
	err := h.DB.Model(&models.Company{}).Pluck("Name", &names).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "companyNames")
	}
	return utils.SuccessResponse(c, names, fiber.StatusOK)
}

// TruckNumbers handles GET /trucks-num
// @Summary List company truck plate numbers
// @Tags Lookups
// @Produce json
// @Success 200 {array} string
// @Router /trucks-num [get]
func (h *LookupHandler) TruckNumbers(c *fiber.Ctx) error {
	nums := make([]string, 0)
	err := h.DB.Model(&models.Truck{}).Pluck("truck_number", &nums).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "truckNumbers")
	}
	return utils.SuccessResponse(c, nums, fiber.StatusOK)
}

// OtherTruckNumbers handles GET /other-trucks-num
// @Summary List outside-owner truck plate numbers
// @Tags Lookups
// @Produce json
// @Success 200 {array} string
// @Router /other-trucks-num [get]
func (h *LookupHandler) OtherTruckNumbers(c *fiber.Ctx) error {
	nums := make([]string, 0)
	err := h.DB.Model(&models.OtherTruck{}).Pluck("truck_number", &nums).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "otherTruckNumbers")
	}
	return utils.SuccessResponse(c, nums, fiber.StatusOK)
}

// TrucksByDriver handles GET /trucks/by-driver/{driver}
// @Summary List company trucks assigned to a driver
// @Tags Lookups
// @Produce json
// @Param driver path string true "Driver name"
// @Success 200 {array} models.Truck
// @Router /trucks/by-driver/{driver} [get]
func (h *LookupHandler) TrucksByDriver(c *fiber.Ctx) error {
	driver := pathParam(c, "driver")
	trucks := make([]models.Truck, 0)
	err := h.DB.
		Clauses(hints.CommentBefore("select", "lookup trucks by driver")).
		Where("driver = ?", driver).
		Find(&trucks).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "trucksByDriver")
	}
	return utils.SuccessResponse(c, trucks, fiber.StatusOK)
}

// OtherTrucksByDriver handles GET /other-trucks/by-driver/{driver}
// @Summary List outside-owner trucks assigned to a driver
// @Tags Lookups
// @Produce json
// @Param driver path string true "Driver name"
// @Success 200 {array} models.OtherTruck
// @Router /other-trucks/by-driver/{driver} [get]
func (h *LookupHandler) OtherTrucksByDriver(c *fiber.Ctx) error {
	driver := pathParam(c, "driver")
	trucks := make([]models.OtherTruck, 0)
	err := h.DB.
		Clauses(hints.CommentBefore("select", "lookup other trucks by driver")).
		Where("driver = ?", driver).
		Find(&trucks).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "otherTrucksByDriver")
	}
	return utils.SuccessResponse(c, trucks, fiber.StatusOK)
}

// ClientNames handles GET /clients/names
// @Summary List client business names
// @Tags Lookups
// @Produce json
// @Success 200 {array} string
// @Router /clients/names [get]
func (h *LookupHandler) ClientNames(c *fiber.Ctx) error {
	names := make([]string, 0)
	err := h.DB.Model(&models.Client{}).Pluck("name", &names).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "clientNames")
	}
	return utils.SuccessResponse(c, names, fiber.StatusOK)
}

// SupplierNames handles GET /suppliers/names/code
// @Summary List supplier business names
// @Tags Lookups
// @Produce json
// @Success 200 {array} string
// @Router /suppliers/names/code [get]
func (h *LookupHandler) SupplierNames(c *fiber.Ctx) error {
	names := make([]string, 0)
	err := h.DB.Model(&models.Supplier{}).Pluck("name", &names).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "supplierNames")
	}
	return utils.SuccessResponse(c, names, fiber.StatusOK)
}

// employeeColumn serves a single numeric column of one employee. Pluck keeps
// the projected column nullable; an empty result set is the 404 case.
func (h *LookupHandler) employeeColumn(c *fiber.Ctx, column string) error {
	name := pathParam(c, "name")

	values := make([]*int64, 0, 1)
	err := h.DB.Model(&models.Employee{}).
		Where("employee = ?", name).
		Limit(1).
		Pluck(column, &values).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "employeeColumn")
	}
	if len(values) == 0 {
		return utils.NotFoundResponse(c, fmt.Sprintf("Employee '%s' not found", name))
	}
	return utils.SuccessResponse(c, fiber.Map{column: values[0]}, fiber.StatusOK)
}

// EmployeeSalary handles GET /employees/{name}/salary
// @Summary Get an employee's base salary
// @Tags Lookups
// @Produce json
// @Param name path string true "Employee name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /employees/{name}/salary [get]
func (h *LookupHandler) EmployeeSalary(c *fiber.Ctx) error {
	return h.employeeColumn(c, "salary")
}

// EmployeeVisaOutstanding handles GET /employees/{name}/visa-outstanding
// @Summary Get an employee's outstanding visa balance
// @Tags Lookups
// @Produce json
// @Param name path string true "Employee name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /employees/{name}/visa-outstanding [get]
func (h *LookupHandler) EmployeeVisaOutstanding(c *fiber.Ctx) error {
	return h.employeeColumn(c, "visa_outstanding")
}

// EmployeeAdvanceAvailable handles GET /employees/{name}/advance-available
// @Summary Get an employee's available advance balance
// @Tags Lookups
// @Produce json
// @Param name path string true "Employee name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /employees/{name}/advance-available [get]
func (h *LookupHandler) EmployeeAdvanceAvailable(c *fiber.Ctx) error {
	return h.employeeColumn(c, "advance_avl")
}

// SalariesByEmployee handles GET /salaries/by-employee/{name}
// @Summary List payroll lines for one employee
// @Tags Lookups
// @Produce json
// @Param name path string true "Employee name"
// @Success 200 {array} models.Salary
// @Router /salaries/by-employee/{name} [get]
func (h *LookupHandler) SalariesByEmployee(c *fiber.Ctx) error {
	name := pathParam(c, "name")
	rows := make([]models.Salary, 0)
	err := h.DB.
		Clauses(hints.CommentBefore("select", "lookup salaries by employee")).
		Where("employee = ?", name).
		Find(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "salariesByEmployee")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// SalariesByMonth handles GET /salaries/by-month/{month}
// @Summary List payroll lines for one month (YYYY-MM)
// @Tags Lookups
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {array} models.Salary
// @Router /salaries/by-month/{month} [get]
func (h *LookupHandler) SalariesByMonth(c *fiber.Ctx) error {
	month := pathParam(c, "month")
	rows := make([]models.Salary, 0)
	err := h.DB.
		Clauses(hints.CommentBefore("select", "lookup salaries by month")).
		Where("month_year = ?", month).
		Find(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "salariesByMonth")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// FinesByTruck handles GET /fines/by-truck/{truck}
// @Summary List fines recorded against a truck
// @Tags Lookups
// @Produce json
// @Param truck path string true "Truck number"
// @Success 200 {array} models.Fine
// @Router /fines/by-truck/{truck} [get]
func (h *LookupHandler) FinesByTruck(c *fiber.Ctx) error {
	truck := pathParam(c, "truck")
	rows := make([]models.Fine, 0)
	err := h.DB.
		Clauses(hints.CommentBefore("select", "lookup fines by truck")).
		Where("truck_number = ?", truck).
		Find(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "finesByTruck")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// FinesByDriver handles GET /fines/by-driver/{driver}
// @Summary List unpaid driver-fault fines for a driver
// @Tags Lookups
// @Produce json
// @Param driver path string true "Driver name"
// @Success 200 {array} models.Fine
// @Router /fines/by-driver/{driver} [get]
func (h *LookupHandler) FinesByDriver(c *fiber.Ctx) error {
	driver := pathParam(c, "driver")
	rows := make([]models.Fine, 0)
	err := h.DB.
		Clauses(hints.CommentBefore("select", "lookup fines by driver")).
		Where("driver_name = ? AND driver_fault = ? AND payment_status = ?", driver, true, "UNPAID").
		Find(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "finesByDriver")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// CompanyFaultFines handles GET /fines/company-fault
// @Summary List unpaid fines not attributed to a driver
// @Tags Lookups
// @Produce json
// @Success 200 {array} models.Fine
// @Router /fines/company-fault [get]
func (h *LookupHandler) CompanyFaultFines(c *fiber.Ctx) error {
	rows := make([]models.Fine, 0)
	err := h.DB.
		Clauses(hints.CommentBefore("select", "lookup company fault fines")).
		Where("driver_fault = ? AND payment_status = ?", false, "UNPAID").
		Find(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "companyFaultFines")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}
