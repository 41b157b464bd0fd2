package v1

import (
	"errors"
	"strconv"

	"hirehub-backend/pkg/apperror"
	"hirehub-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseIDParam reads a positive int64 path parameter, pushing a 400 on failure
func parseIDParam(c *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.BadRequest("Invalid " + label))
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates a request body, pushing a 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		} else {
			c.Error(apperror.BadRequest("Invalid request body"))
		}
		return false
	}
	return true
}
