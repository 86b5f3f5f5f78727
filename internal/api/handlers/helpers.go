package handlers

import (
	"errors"
	"strings"

	"claimvista/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validationFields turns validator errors into a field -> message map so the
// client can surface failures inline per field.
func validationFields(err error) map[string]string {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = name + " is required"
		case "email":
			fields[name] = name + " must be a valid email address"
		case "gt":
			fields[name] = name + " must be greater than " + fe.Param()
		case "min":
			fields[name] = name + " must be at least " + fe.Param() + " characters"
		case "max":
			fields[name] = name + " is too long"
		case "oneof":
			fields[name] = name + " must be one of: " + fe.Param()
		default:
			fields[name] = name + " is invalid"
		}
	}
	return fields
}

func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"fields": validationFields(err),
	})
}

// currentUser rebuilds the acting user from the token claims the auth
// middleware stashed in locals.
func currentUser(c *fiber.Ctx) (models.User, error) {
	id, _ := c.Locals("userID").(string)
	name, _ := c.Locals("userName").(string)
	email, _ := c.Locals("email").(string)
	roleStr, _ := c.Locals("role").(string)
	if id == "" {
		return models.User{}, fiber.ErrUnauthorized
	}

	role, err := models.ParseRole(roleStr)
	if err != nil {
		return models.User{}, fiber.ErrUnauthorized
	}

	return models.User{
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}
