// Package basehdl holds the shared plumbing for HTTP handlers:
// request parsing, validation and the response envelope.
package basehdl

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
	"leoni_app/api/internal/utility"
)

// ParseRequestBody decodes the JSON body into input and validates it
// with the global validator. UseNumber keeps numeric precision.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	return nil
}

// ParseRequestParams binds URI params into input and validates it.
func ParseRequestParams(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().URI(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	return nil
}

// ParsePagination reads page/limit query params with sane defaults.
func ParsePagination(c fiber.Ctx) (int64, int64) {
	page := utility.P2Int64(c.Query("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit := utility.P2Int64(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

// ObjectIDFromParam parses the named URI param as an ObjectID.
func ObjectIDFromParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "Identifiant invalide", common.StatusBadRequest, nil)
	}
	return id, nil
}
