package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct tags on a request DTO and reports the
// offending fields as a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		invalid = append(invalid, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}

	return NewAppError(fiber.StatusBadRequest, "Validation failed: "+strings.Join(invalid, ", "))
}
