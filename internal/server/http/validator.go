package http

import (
	"fmt"
	"reflect"
	"strings"

	"checkers/internal/server/core"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

const (
	localValidated     = "validated"
	localValidatedBody = "validatedBody"
)

// validationMiddleware parses and validates the JSON body of every POST
// route before its handler runs.
func validationMiddleware(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Next()
	}

	path := c.Path()
	var requestType any

	switch {
	case strings.HasSuffix(path, "/games"):
		requestType = &core.CreateGameRequest{}
	case strings.HasSuffix(path, "/select"):
		requestType = &core.SelectRequest{}
	case strings.HasSuffix(path, "/moves"):
		requestType = &core.MoveRequest{}
	default:
		return c.Next()
	}

	if err := c.BodyParser(requestType); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid request body",
			Code:    core.ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	if err := validate.Struct(requestType); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "validation failed",
				Code:    core.ErrInvalidRequest,
				Details: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "validation failed",
			Code:    core.ErrInvalidRequest,
			Details: describe(errs),
		})
	}

	c.Locals(localValidatedBody, requestType)
	c.Locals(localValidated, true)

	return c.Next()
}

// describe renders validation errors as one readable line
func describe(errs validator.ValidationErrors) string {
	var details strings.Builder
	for _, err := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		unit := ""
		if err.Type().Kind() == reflect.String {
			unit = " characters"
		}
		switch err.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", err.Field())
		case "len":
			fmt.Fprintf(&details, "%s must be exactly %s%s", err.Field(), err.Param(), unit)
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s%s", err.Field(), err.Param(), unit)
		case "max":
			fmt.Fprintf(&details, "%s must be at most %s%s", err.Field(), err.Param(), unit)
		default:
			fmt.Fprintf(&details, "%s failed %s validation", err.Field(), err.Tag())
		}
	}
	return details.String()
}

// validatedBody returns the body stored by validationMiddleware. When it is
// missing the route bypassed validation; the error response is already
// written and ok is false.
func validatedBody[T any](c *fiber.Ctx) (body *T, ok bool) {
	if validated, _ := c.Locals(localValidated).(bool); !validated {
		c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation bypass detected",
			Code:  core.ErrInternalError,
		})
		return nil, false
	}
	body, ok = c.Locals(localValidatedBody).(*T)
	if !ok || body == nil {
		c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation data missing",
			Code:  core.ErrInternalError,
		})
		return nil, false
	}
	return body, true
}

func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
