package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf keys, the names operators write in
// YAML files and APP_ variables.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" {
			return f.Name
		}

		return name
	})

	return v
}()

// Validate checks every section and lists all problems at once. The
// service refuses to start on any of them.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return err
	}

	lines := make([]string, 0, len(failures))
	for _, fe := range failures {
		lines = append(lines, describe(fe))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

// describe renders one failure as "key (APP_KEY) problem".
func describe(fe validator.FieldError) string {
	key := keyPath(fe.Namespace())
	field := fmt.Sprintf("%s (%s)", key, envName(key))

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "startswith":
		return fmt.Sprintf("%s must start with %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// keyPath drops the root struct name: "Config.auth.session_secret" becomes
// "auth.session_secret".
func keyPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}

// envName is the APP_ variable that sets key. Slice indexes are dropped.
func envName(key string) string {
	if i := strings.IndexByte(key, '['); i >= 0 {
		key = key[:i]
	}

	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
