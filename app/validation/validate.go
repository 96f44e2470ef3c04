package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates v against its `validate` tags and returns a single
// user-facing message listing the offending fields, or nil
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			fields = append(fields, fmt.Sprintf("%s must be a valid email", fe.Field()))
		case "oneof":
			fields = append(fields, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		default:
			fields = append(fields, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return fmt.Errorf("%s", strings.Join(fields, "; "))
}
