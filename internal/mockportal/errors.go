package mockportal

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// The mock mirrors the production backend's error envelope: failures carry
// a "detail" member that is a plain string for ordinary errors and an array
// of {loc, msg, type} objects for validation failures. The gateway's
// scalarization logic is exercised against both shapes.

func detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"detail": msg})
}

type validationEntry struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func validationDetail(c echo.Context, err error) error {
	entries := []validationEntry{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			entries = append(entries, validationEntry{
				Loc:  []string{"body", strings.ToLower(fe.Field())},
				Msg:  fieldMessage(fe),
				Type: "value_error." + fe.Tag(),
			})
		}
	} else {
		entries = append(entries, validationEntry{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		})
	}

	return c.JSON(422, map[string]any{"detail": entries})
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "gte", "lte":
		return field + " is out of range"
	default:
		return field + " failed validation (" + fe.Tag() + ")"
	}
}
