// ABOUTME: Input validation for client, project and invoice payloads
// ABOUTME: Wraps go-playground/validator with phone and decimal support
package models

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/ttacon/libphonenumber"
)

// PhoneRegion is the region used to parse phone numbers written without a
// country prefix. Set once at startup from config.
var PhoneRegion = "US"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Compare decimals as floats so gte/lte tags work on money fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidatePhoneNumber(fl.Field().String(), PhoneRegion) == nil
	})

	return v
}

// ValidatePhoneNumber checks that phone parses as a valid number in region.
func ValidatePhoneNumber(phone, region string) error {
	p, err := libphonenumber.Parse(phone, region)
	if err != nil {
		return err
	}
	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("phone number %q is not valid", phone)
	}
	return nil
}

// NormalizePhone formats a valid phone number in international form.
// Numbers that do not parse are returned unchanged.
func NormalizePhone(phone, region string) string {
	p, err := libphonenumber.Parse(phone, region)
	if err != nil || !libphonenumber.IsValidNumber(p) {
		return phone
	}
	return libphonenumber.Format(p, libphonenumber.INTERNATIONAL)
}

// ValidationError maps field paths to the rule each one failed.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%s)", name, e.Fields[name]))
	}
	return "invalid " + strings.Join(parts, ", ")
}

// Validate checks v against its validate struct tags.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fieldPath(fe.Namespace())] = fe.Tag()
	}
	return out
}

// fieldPath drops the leading struct name from a validator namespace,
// so "InvoiceInput.lineItems[0].rate" becomes "lineItems[0].rate".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
