package api

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	CodeSuccess       = "0000"
	CodeBadRequest    = "4000"
	CodeUnauthorized  = "4010"
	CodeInternalError = "5000"

	SomeThingWentWrong = "something went wrong"
	InvalidateBody     = "invalid request body"
)

// Outbound collaborator paths (relative to each adapter base URL).
const (
	SttPath        = "/stt/transcribe"
	CorrectionPath = "/tutor/correction"
	ChatPath       = "/tutor/chat"
)

type Response struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body,omitempty"`
}

func Ok(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":    CodeSuccess,
		"message": "success",
		"body":    body,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    CodeBadRequest,
		"message": message,
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    CodeUnauthorized,
		"message": "unauthorized",
	})
}

func JwtError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    CodeUnauthorized,
		"message": message,
	})
}

func InternalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    CodeInternalError,
		"message": message,
	})
}

// ValidationErrorResponse maps validator errors back to the request's json
// field names so clients see the names they actually sent.
func ValidationErrorResponse(c *fiber.Ctx, err error, req any) error {
	invalidFields := make([]string, 0)

	if ve, ok := err.(validator.ValidationErrors); ok {
		t := reflect.TypeOf(req)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		for _, fe := range ve {
			name := fe.Field()
			if f, found := t.FieldByName(fe.StructField()); found {
				if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
					name = tag
				}
			}
			invalidFields = append(invalidFields, fmt.Sprintf("%s (%s)", name, fe.Tag()))
		}
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    CodeBadRequest,
		"message": "validation failed: " + strings.Join(invalidFields, ", "),
	})
}
