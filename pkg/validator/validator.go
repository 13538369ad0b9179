package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			var errMsgs []string
			for _, fe := range fieldErrs {
				errMsgs = append(errMsgs, fmt.Sprintf(
					"Field: %s, Tag: %s, Param: %s", fe.Field(), fe.Tag(), fe.Param(),
				))
			}
			return fmt.Errorf("validation failed: %s: %w", strings.Join(errMsgs, "; "), fieldErrs)
		}
		return err
	}
	return nil
}

// Fields returns the struct field names behind a validation error so callers
// can build their own typed errors. Falls back to the raw message when the
// error did not come from this package's validator.
func Fields(err error) []string {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		names := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			names = append(names, fe.Field())
		}
		return names
	}
	return []string{err.Error()}
}
