package venuetype

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/validate"
)

// ValidateDetails checks details against the fields configured for
// venueType. Field paths are reported as "details.<name>".
func (r *Registry) ValidateDetails(venueType string, details map[string]interface{}) []apperr.FieldError {
	cfg, ok := r.Lookup(venueType)
	if !ok {
		return []apperr.FieldError{{Field: "type", Message: "Must be one of: " + strings.Join(r.Names(), " ")}}
	}

	var errs []apperr.FieldError
	for _, f := range cfg.Fields {
		v, present := details[f.Name]
		if !present || isEmpty(v) {
			if f.Required {
				errs = append(errs, apperr.FieldError{Field: "details." + f.Name, Message: "This field is required"})
			}
			continue
		}
		if msg := check(f, v); msg != "" {
			errs = append(errs, apperr.FieldError{Field: "details." + f.Name, Message: msg})
		}
	}
	for key := range details {
		if _, known := cfg.field(key); !known {
			errs = append(errs, apperr.FieldError{Field: "details." + key, Message: "Unknown field"})
		}
	}
	sortFieldErrors(errs)
	return errs
}

// check picks the checker for the field's type. An empty result means the
// value is acceptable.
func check(f Field, v interface{}) string {
	switch f.Type {
	case FieldText, FieldTextarea:
		s, ok := v.(string)
		if !ok {
			return "Must be text"
		}
		return checkLength(f, s)
	case FieldNumber:
		n, ok := v.(float64)
		if !ok || !finite(n) {
			return "Must be a number"
		}
		if f.Min != nil && n < *f.Min {
			return "Must be greater than or equal to " + formatNumber(*f.Min)
		}
		if f.Max != nil && n > *f.Max {
			return "Must be less than or equal to " + formatNumber(*f.Max)
		}
		return ""
	case FieldSelect:
		s, ok := v.(string)
		if !ok || !contains(f.Options, s) {
			return "Must be one of: " + strings.Join(f.Options, " ")
		}
		return ""
	case FieldMultiselect:
		items, ok := v.([]interface{})
		if !ok {
			return "Must be a list"
		}
		for _, item := range items {
			s, ok := item.(string)
			if !ok || !contains(f.Options, s) {
				return "Must be one of: " + strings.Join(f.Options, " ")
			}
		}
		return ""
	case FieldCheckbox:
		if _, ok := v.(bool); !ok {
			return "Must be true or false"
		}
		return ""
	case FieldTime:
		s, ok := v.(string)
		if !ok {
			return "Must be a time (HH:MM)"
		}
		if _, err := time.Parse("15:04", s); err != nil {
			return "Must be a time (HH:MM)"
		}
		return ""
	case FieldEmail:
		if s, ok := v.(string); !ok || !validate.IsEmail(s) {
			return "Invalid email format"
		}
		return ""
	case FieldTel:
		if s, ok := v.(string); !ok || !validate.IsPhone(s) {
			return "Invalid phone number"
		}
		return ""
	case FieldURL:
		if s, ok := v.(string); !ok || !validate.IsURL(s) {
			return "Invalid URL"
		}
		return ""
	}
	return fmt.Sprintf("Unsupported field type %q", f.Type)
}

func checkLength(f Field, s string) string {
	n := float64(utf8.RuneCountInString(s))
	if f.Min != nil && n < *f.Min {
		return "Must be at least " + formatNumber(*f.Min) + " characters"
	}
	if f.Max != nil && n > *f.Max {
		return "Must be at most " + formatNumber(*f.Max) + " characters"
	}
	return ""
}

// Normalize returns a copy of details with values coerced to their field's
// kind where the conversion is lossless: numeric strings become numbers,
// "true"/"false" become booleans, a single string becomes a one-item list
// for multiselect fields and strings are trimmed. Values that cannot be
// coerced are left for ValidateDetails to reject.
func (r *Registry) Normalize(venueType string, details map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(details))
	cfg, ok := r.Lookup(venueType)
	for k, v := range details {
		if s, isString := v.(string); isString {
			v = strings.TrimSpace(s)
		}
		if ok {
			if f, known := cfg.field(k); known {
				v = coerce(f.Type, v)
			}
		}
		out[k] = v
	}
	return out
}

func coerce(t FieldType, v interface{}) interface{} {
	switch t {
	case FieldNumber:
		switch n := v.(type) {
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil && finite(f) {
				return f
			}
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	case FieldCheckbox:
		if s, ok := v.(string); ok {
			if b, err := strconv.ParseBool(s); err == nil {
				return b
			}
		}
	case FieldMultiselect:
		switch items := v.(type) {
		case string:
			return []interface{}{items}
		case []string:
			out := make([]interface{}, len(items))
			for i, s := range items {
				out[i] = s
			}
			return out
		}
	case FieldSelect:
		if n, ok := v.(float64); ok {
			return formatNumber(n)
		}
	}
	return v
}

// finite rejects NaN and infinities, which JSON cannot encode.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isEmpty(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []interface{}:
		return len(x) == 0
	}
	return false
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func sortFieldErrors(errs []apperr.FieldError) {
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
}
