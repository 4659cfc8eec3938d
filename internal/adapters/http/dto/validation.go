package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

var (
	// ErrValidation wraps struct tag failures.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps bodies and queries that could not be decoded at all.
	ErrBinding = errors.New("binding failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Fields are reported by their json
// or form name so messages line up with what the client sent.
//
// Custom tags:
//   - uuid: empty or a parseable UUID
//   - notempty: not blank after trimming
//   - weight: zero (use the default) or within the quote weight bounds
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(fieldName)

		_ = validate.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}

			_, err := uuid.Parse(value)

			return err == nil
		})
		_ = validate.RegisterValidation("notempty", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = validate.RegisterValidation("weight", func(fl validator.FieldLevel) bool {
			w := fl.Field().Int()
			return w == 0 || (w >= domain.MinWeight && w <= domain.MaxWeight)
		})
	})

	return validate
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")

		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}

	return fld.Name
}

// Validate runs the struct tags of v.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes a JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	return bindAndValidate(c.ShouldBindJSON(v), v)
}

// BindFormAndValidate decodes a urlencoded or multipart form into v and validates it.
func BindFormAndValidate(c *gin.Context, v any) error {
	return bindAndValidate(c.ShouldBindWith(v, binding.Form), v)
}

// BindQueryAndValidate decodes the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	return bindAndValidate(c.ShouldBindQuery(v), v)
}

func bindAndValidate(bindErr error, v any) error {
	if bindErr != nil {
		return fmt.Errorf("%w: %w", ErrBinding, bindErr)
	}

	return Validate(v)
}

// ValidationErrors returns one message per failing field, keyed by the
// field's json or form name. It is empty for errors that are not tag failures.
func ValidationErrors(err error) map[string]string {
	fields := map[string]string{}

	var failures validator.ValidationErrors
	if errors.As(err, &failures) {
		for _, fe := range failures {
			fields[fe.Field()] = message(fe)
		}
	}

	return fields
}

// IsValidationError reports whether err carries struct tag failures.
func IsValidationError(err error) bool {
	var failures validator.ValidationErrors
	return errors.As(err, &failures)
}

var messages = map[string]string{
	"required": "this field is required",
	"uuid":     "must be a valid UUID",
	"notempty": "must not be empty",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"gt":       "must be greater than %s",
	"lt":       "must be less than %s",
	"oneof":    "must be one of: %s",
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "max":
		unit := ""
		if fe.Kind() == reflect.String {
			unit = " characters"
		}

		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}

		return "must be " + bound + " " + fe.Param() + unit
	case "weight":
		return "must be between " + strconv.Itoa(domain.MinWeight) + " and " + strconv.Itoa(domain.MaxWeight)
	}

	msg, ok := messages[fe.Tag()]
	if !ok {
		return "failed validation: " + fe.Tag()
	}

	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, fe.Param())
	}

	return msg
}
