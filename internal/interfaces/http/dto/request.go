package dto

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// RegisterValidator installs the notblank rule and makes validation errors report JSON field names.
func RegisterValidator() {
	registerOnce.Do(registerValidator)
}

func registerValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if f.Tag.Get("variant") != "" {
			return "variant:" + f.Name
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

// BindMessage turns a bind error into a caller-facing message.
func BindMessage(err error) string {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fieldPath(fe)
		switch fe.Tag() {
		case "required", "notblank":
			return field + " is required"
		case "min":
			return field + " must not be empty"
		case "max":
			return fmt.Sprintf("%s must be at most %s long", field, fe.Param())
		default:
			return field + " is invalid"
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.Is(err, io.EOF):
		return "request body is required"
	case stderrors.As(err, &syntaxErr):
		return "request body is not valid JSON"
	case stderrors.As(err, &typeErr):
		if typeErr.Field != "" {
			return typeErr.Field + " has the wrong type"
		}
		return "request body has the wrong shape"
	}

	var stepErr *StepError
	if stderrors.As(err, &stepErr) {
		return stepErr.Error()
	}
	return "invalid request body"
}

// fieldPath drops the root struct and any union variant wrapper from the namespace.
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	out := parts[:0]
	for _, p := range parts {
		if strings.HasPrefix(p, "variant:") {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return fe.Field()
	}
	return strings.Join(out, ".")
}
