package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avestaexchange/avesta/internal/shared/errors"
)

// ParseIDQuery reads a positive numeric record ID from the query string,
// e.g. DELETE /api/admin/faqs?id=7. entityName is used in error messages.
func ParseIDQuery(c *gin.Context, key, entityName string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, errors.NewValidationError("Missing " + entityName + " ID")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + entityName + " ID")
	}

	return uint(id), nil
}
