package reservation

import (
	"errors"
	"reflect"
	"strings"

	"travelhub/utils"

	"github.com/go-playground/validator/v10"
)

// newValidator reports failing fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateRequest runs struct validation and enumerates every failing field.
func (s *DefaultReservationService) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}
	if len(missing) > 0 {
		return utils.NewValidationError("Missing required fields", missing...)
	}
	return utils.NewValidationError("Invalid fields", invalid...)
}
