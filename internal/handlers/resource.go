// resource.go
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
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/truckerdb/internal/registry"
	"github.com/localnerve/truckerdb/internal/services"
	"github.com/localnerve/truckerdb/internal/utils"
)

// Resource serves the CRUD routes of one record type.
type Resource[T any] struct {
	store    *services.Store[T]
	validate *validator.Validate
	label    string
}

// NewResource builds a Resource over a store. label is the human noun used
// in acknowledgement messages ("Employee added successfully!").
func NewResource[T any](store *services.Store[T], validate *validator.Validate, label string) *Resource[T] {
	return &Resource[T]{store: store, validate: validate, label: label}
}

// key parses the path key per the schema's key kind. A non-numeric key on an
// id-keyed entity is a validation failure, not a lookup miss.
func (r *Resource[T]) key(c *fiber.Ctx) (interface{}, error) {
	raw := pathParam(c, "key")
	if r.store.Schema().KeyKind == registry.KeyInt {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s id must be numeric", r.label)
		}
		return id, nil
	}
	return raw, nil
}

// List handles GET /{entities}
// @Summary List all records of a type
// @Tags Records
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{entities} [get]
func (r *Resource[T]) List(c *fiber.Ctx) error {
	rows, err := r.store.List()
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "list")
	}
	return utils.SuccessResponse(c, rows, fiber.StatusOK)
}

// Get handles GET /{entities}/{key}
// @Summary Get one record by key
// @Tags Records
// @Produce json
// @Param key path string true "Record key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{entities}/{key} [get]
func (r *Resource[T]) Get(c *fiber.Ctx) error {
	key, err := r.key(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error(), nil)
	}

	row, err := r.store.Get(key)
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, fmt.Sprintf("%s '%v' not found", r.label, key))
	}
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "get")
	}
	return utils.SuccessResponse(c, row, fiber.StatusOK)
}

// Create handles POST /{entities}
// @Summary Create a record
// @Tags Records
// @Accept json
// @Produce json
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /{entities} [post]
func (r *Resource[T]) Create(c *fiber.Ctx) error {
	var row T
	if err := c.BodyParser(&row); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body: "+err.Error(), nil)
	}
	if fields := r.violations(&row); fields != nil {
		return utils.ValidationErrorResponse(c, "missing required fields", fields)
	}

	err := r.store.Create(&row)
	if errors.Is(err, services.ErrConflict) {
		return utils.ConflictResponse(c, fmt.Sprintf("%s already exists", r.label))
	}
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "create")
	}
	return utils.MessageResponse(c, fmt.Sprintf("%s added successfully!", r.label), fiber.StatusCreated)
}

// Update handles PUT /{entities}/{key}
// @Summary Replace a record
// @Tags Records
// @Accept json
// @Produce json
// @Param key path string true "Record key"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /{entities}/{key} [put]
func (r *Resource[T]) Update(c *fiber.Ctx) error {
	key, err := r.key(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error(), nil)
	}

	var row T
	if err := c.BodyParser(&row); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body: "+err.Error(), nil)
	}
	if fields := r.violations(&row); fields != nil {
		return utils.ValidationErrorResponse(c, "missing required fields", fields)
	}

	err = r.store.Update(key, &row)
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, fmt.Sprintf("%s '%v' not found", r.label, key))
	}
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "update")
	}
	return utils.MessageResponse(c, fmt.Sprintf("%s updated successfully!", r.label), fiber.StatusOK)
}

// Delete handles DELETE /{entities}/{key}
// @Summary Delete a record and its attachments
// @Tags Records
// @Produce json
// @Param key path string true "Record key"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{entities}/{key} [delete]
func (r *Resource[T]) Delete(c *fiber.Ctx) error {
	key, err := r.key(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error(), nil)
	}

	err = r.store.Delete(key)
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, fmt.Sprintf("%s '%v' not found", r.label, key))
	}
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "delete")
	}
	return utils.MessageResponse(c, fmt.Sprintf("%s deleted successfully!", r.label), fiber.StatusOK)
}

// violations runs required-field validation, returning nil when clean.
func (r *Resource[T]) violations(row *T) []utils.FieldViolation {
	err := r.validate.Struct(row)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []utils.FieldViolation{{Field: "", Rule: err.Error()}}
	}
	fields := make([]utils.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, utils.FieldViolation{Field: fe.Field(), Rule: fe.Tag()})
	}
	return fields
}

// pathParam returns a URL-decoded path parameter. Natural keys carry spaces
// and symbols, which arrive percent-encoded.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
