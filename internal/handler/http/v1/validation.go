package v1

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/school_locator/internal/service"
)

// fieldLabels - человекочитаемые названия полей для сообщений об ошибках
var fieldLabels = map[string]string{
	"name":      "School name",
	"address":   "School address",
	"latitude":  "Latitude",
	"longitude": "Longitude",
	"radius":    "Radius",
}

// newValidator создает валидатор, который сообщает имена полей из json/form тегов
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("schoolname", func(fl validator.FieldLevel) bool {
		return service.SchoolNamePattern.MatchString(fl.Field().String())
	})
	return v
}

// toFieldErrors преобразует ошибку валидатора в список ошибок по полям
func toFieldErrors(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: "request", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min", "max":
		if fe.Field() == "name" {
			return label + " must be between 2 and 255 characters"
		}
		return label + " must be between 5 and 500 characters"
	case "latitude":
		return label + " must be a valid number between -90 and 90"
	case "longitude":
		return label + " must be a valid number between -180 and 180"
	case "schoolname":
		return label + " contains invalid characters"
	case "gt", "lte":
		return fmt.Sprintf("%s must be a positive number of kilometers not above %v", label, 20016)
	}
	return fmt.Sprintf("%s failed on the '%s' rule", label, fe.Tag())
}
