// Package validate runs declarative request validation and converts the
// result into field errors the HTTP layer can return as a 400 error array.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	gstinPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	phonePattern   = regexp.MustCompile(`^(?:\+91|91|0)?[6-9][0-9]{9}$`)
	pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	phoneStrip     = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
			return IsGSTIN(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
		_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
			return pincodePattern.MatchString(fl.Field().String())
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		instance = v
	})
	return instance
}

// IsGSTIN reports whether s is a well-formed Indian GST identification number.
func IsGSTIN(s string) bool {
	return gstinPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// IsPhone reports whether s is an Indian mobile number, with an optional
// +91, 91 or 0 prefix. Spaces, dashes and parentheses are ignored.
func IsPhone(s string) bool {
	return phonePattern.MatchString(phoneStrip.Replace(strings.TrimSpace(s)))
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return engine().Var(s, "required,email") == nil
}

// IsURL reports whether s is an absolute URL.
func IsURL(s string) bool {
	return engine().Var(s, "required,url") == nil
}

// Struct validates v using its `validate` tags. Failures are returned as an
// *apperr.ValidationError listing every rejected field.
func Struct(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &apperr.ValidationError{}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, apperr.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the top-level struct name so nested fields read "pricing.min_price".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "phone":
		return "Invalid phone number"
	case "gstin":
		return "Invalid GSTIN"
	case "pincode":
		return "Invalid pincode"
	case "uuid", "uuid4":
		return "Invalid UUID format"
	case "url":
		return "Invalid URL format"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "Must be at least " + fe.Param() + " characters"
		}
		return "Must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "Must be at most " + fe.Param() + " characters"
		}
		return "Must be at most " + fe.Param()
	case "gt":
		return "Must be greater than " + fe.Param()
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	case "gtefield":
		return "Must be greater than or equal to " + fe.Param()
	default:
		return "Invalid value"
	}
}
