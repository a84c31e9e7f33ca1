// documents.go
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

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/truckerdb/internal/services"
	"github.com/localnerve/truckerdb/internal/utils"
)

// DocumentHandler serves the attachment routes of one record type.
type DocumentHandler struct {
	docs  *services.Documents
	label string
}

// NewDocumentHandler builds a DocumentHandler over a document manager.
func NewDocumentHandler(docs *services.Documents, label string) *DocumentHandler {
	return &DocumentHandler{docs: docs, label: label}
}

// List handles GET /{entities}/{key}/documents
// @Summary List the stored documents of a record
// @Tags Documents
// @Produce json
// @Param key path string true "Record key"
// @Success 200 {array} models.Document
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{entities}/{key}/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	owner := pathParam(c, "key")

	docs, err := h.docs.List(owner)
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, fmt.Sprintf("No documents found for %s '%s'", h.label, owner))
	}
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listDocuments")
	}
	return utils.SuccessResponse(c, docs, fiber.StatusOK)
}

// View streams the first matching document to the client. Typed routes pass
// the document type path segment; untyped routes serve the single receipt.
// @Summary Download a stored document
// @Tags Documents
// @Produce octet-stream
// @Param key path string true "Record key"
// @Param type path string false "Document type"
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{entities}/{key}/documents/{type} [get]
func (h *DocumentHandler) View(c *fiber.Ctx) error {
	owner := pathParam(c, "key")
	docType := pathParam(c, "type")

	path, row, err := h.docs.Resolve(owner, docType)
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, fmt.Sprintf("No document found for %s '%s'", h.label, owner))
	}
	if errors.Is(err, services.ErrFileMissing) {
		return utils.FileMissingResponse(c, fmt.Sprintf("Document '%s' is recorded but its file is missing", row.URL))
	}
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "viewDocument")
	}
	return c.Download(path, row.URL)
}

// Upload stores a multipart document under the "file" field and returns the
// stored attachment metadata (owner, type, url, upload date).
// @Summary Upload a document
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param key path string true "Record key"
// @Param type path string false "Document type"
// @Param file formData file true "Document file"
// @Success 201 {object} models.Document
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /{entities}/{key}/documents/{type}/upload [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	owner := pathParam(c, "key")
	docType := pathParam(c, "type")

	fh, err := c.FormFile("file")
	if err != nil {
		return utils.ValidationErrorResponse(c, "multipart field 'file' is required", nil)
	}
	f, err := fh.Open()
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "uploadDocument")
	}
	defer f.Close()

	row, err := h.docs.Upload(owner, docType, fh.Filename, f)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "uploadDocument")
	}
	return utils.SuccessResponse(c, row, fiber.StatusCreated)
}

// Delete removes the matching documents, files first.
// @Summary Delete stored documents
// @Tags Documents
// @Produce json
// @Param key path string true "Record key"
// @Param type path string false "Document type"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{entities}/{key}/documents/{type} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	owner := pathParam(c, "key")
	docType := pathParam(c, "type")

	err := h.docs.Delete(owner, docType)
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, fmt.Sprintf("No document found for %s '%s'", h.label, owner))
	}
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteDocument")
	}
	return utils.MessageResponse(c, "Document deleted successfully!", fiber.StatusOK)
}
