package request

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"halisaha-api/internal/domain/reservation"
	"halisaha-api/internal/domain/slot"
	"halisaha-api/internal/domain/user"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

var domainRules = map[string]validator.Func{
	"slot_time": func(fl validator.FieldLevel) bool {
		_, err := slot.Parse(fl.Field().String())
		return err == nil
	},
	"role": func(fl validator.FieldLevel) bool {
		return user.Role(fl.Field().String()).IsValid()
	},
	"reservation_status": func(fl validator.FieldLevel) bool {
		return reservation.Status(fl.Field().String()).IsValid()
	},
}

// RegisterValidators adds the domain tags to gin's validator. Safe to call more than once.
// It panics if a tag cannot be registered, since the DTOs would otherwise bind unchecked.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := RegisterDomainRules(v); err != nil {
			panic(err)
		}
	})
}

// RegisterDomainRules installs the json tag names and the domain tags on v.
func RegisterDomainRules(v *validator.Validate) error {
	// report json names in FieldError
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range domainRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Details turns a bind error into something a client can act on. Non-validation errors
// (malformed JSON, wrong types) come back as their message.
func Details(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
