package handlers

import (
	"reflect"
	"strings"
	"sync"

	"travelhub/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator.
// It must run before any route binds a request body.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("reservation_status", func(fl validator.FieldLevel) bool {
			switch models.ReservationStatus(fl.Field().String()) {
			case models.StatusConfirmed, models.StatusCancelled:
				return true
			}
			return false
		})
	})
}
