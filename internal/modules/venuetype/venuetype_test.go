package venuetype

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"restaurant", "hotel", "function_hall", "sweet_shop"}, r.Names())

	cfg, ok := r.Lookup("hotel")
	require.True(t, ok)
	assert.Equal(t, "star_rating", cfg.Fields[0].Name)

	_, ok = r.Lookup("spaceport")
	assert.False(t, ok)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field type", "types:\n  - type: x\n    fields:\n      - {name: a, type: slider}\n"},
		{"duplicate type", "types:\n  - type: x\n  - type: x\n"},
		{"select without options", "types:\n  - type: x\n    fields:\n      - {name: a, type: select}\n"},
		{"duplicate field", "types:\n  - type: x\n    fields:\n      - {name: a, type: text}\n      - {name: a, type: text}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func fieldConfig(t *testing.T, f Field) *Registry {
	t.Helper()
	return &Registry{types: []Config{{Type: "test", Fields: []Field{f}}}, index: map[string]int{"test": 0}}
}

func ptr(f float64) *float64 { return &f }

func TestValidateDetailsPicksCheckerPerFieldType(t *testing.T) {
	tests := []struct {
		field Field
		good  interface{}
		bad   interface{}
		msg   string
	}{
		{Field{Name: "f", Type: FieldText, Max: ptr(3)}, "abc", "abcd", "Must be at most 3 characters"},
		{Field{Name: "f", Type: FieldTextarea, Min: ptr(2)}, "ok", "x", "Must be at least 2 characters"},
		{Field{Name: "f", Type: FieldNumber, Min: ptr(1), Max: ptr(10)}, 5.0, 11.0, "Must be less than or equal to 10"},
		{Field{Name: "f", Type: FieldNumber}, 5.0, "five", "Must be a number"},
		{Field{Name: "f", Type: FieldSelect, Options: []string{"a", "b"}}, "a", "c", "Must be one of: a b"},
		{Field{Name: "f", Type: FieldMultiselect, Options: []string{"a", "b"}}, []interface{}{"a", "b"}, []interface{}{"a", "z"}, "Must be one of: a b"},
		{Field{Name: "f", Type: FieldCheckbox}, true, "yes", "Must be true or false"},
		{Field{Name: "f", Type: FieldTime}, "09:30", "25:00", "Must be a time (HH:MM)"},
		{Field{Name: "f", Type: FieldEmail}, "desk@hotel.in", "desk-at-hotel", "Invalid email format"},
		{Field{Name: "f", Type: FieldTel}, "+91 98765 43210", "12345", "Invalid phone number"},
		{Field{Name: "f", Type: FieldURL}, "https://hotel.in", "hotel", "Invalid URL"},
	}
	for _, tt := range tests {
		t.Run(string(tt.field.Type), func(t *testing.T) {
			r := fieldConfig(t, tt.field)
			assert.Empty(t, r.ValidateDetails("test", map[string]interface{}{"f": tt.good}))
			assert.Equal(t,
				[]apperr.FieldError{{Field: "details.f", Message: tt.msg}},
				r.ValidateDetails("test", map[string]interface{}{"f": tt.bad}))
		})
	}
}

func TestValidateDetails(t *testing.T) {
	r := Default()

	t.Run("required and unknown fields", func(t *testing.T) {
		errs := r.ValidateDetails("sweet_shop", map[string]interface{}{
			"specialities": "  ",
			"helipad":      true,
		})
		assert.Equal(t, []apperr.FieldError{
			{Field: "details.helipad", Message: "Unknown field"},
			{Field: "details.specialities", Message: "This field is required"},
		}, errs)
	})

	t.Run("complete restaurant", func(t *testing.T) {
		errs := r.ValidateDetails("restaurant", map[string]interface{}{
			"cuisine":          []interface{}{"south_indian", "chinese"},
			"seating_capacity": 80.0,
			"food_preference":  "veg",
			"opening_time":     "11:00",
			"serves_alcohol":   false,
		})
		assert.Empty(t, errs)
	})

	t.Run("unknown type", func(t *testing.T) {
		errs := r.ValidateDetails("spaceport", nil)
		require.Len(t, errs, 1)
		assert.Equal(t, "type", errs[0].Field)
	})

	t.Run("non-finite numbers", func(t *testing.T) {
		for _, raw := range []interface{}{"NaN", "Infinity", "-Inf", math.NaN(), math.Inf(1)} {
			details := r.Normalize("restaurant", map[string]interface{}{
				"cuisine":          []interface{}{"chinese"},
				"seating_capacity": raw,
				"food_preference":  "veg",
			})
			errs := r.ValidateDetails("restaurant", details)
			assert.Equal(t, []apperr.FieldError{{Field: "details.seating_capacity", Message: "Must be a number"}}, errs, "%v", raw)
		}
	})
}

func TestNormalize(t *testing.T) {
	r := Default()
	out := r.Normalize("hotel", map[string]interface{}{
		"total_rooms":       "120",
		"star_rating":       4.0,
		"amenities":         "wifi",
		"reservation_email": " desk@hotel.in ",
		"extra":             "kept",
	})
	assert.Equal(t, 120.0, out["total_rooms"])
	assert.Equal(t, "4", out["star_rating"])
	assert.Equal(t, []interface{}{"wifi"}, out["amenities"])
	assert.Equal(t, "desk@hotel.in", out["reservation_email"])
	assert.Equal(t, "kept", out["extra"])

	out = r.Normalize("restaurant", map[string]interface{}{"home_delivery": "true"})
	assert.Equal(t, true, out["home_delivery"])

	out = r.Normalize("hotel", map[string]interface{}{"total_rooms": "NaN", "star_rating": "Infinity"})
	assert.Equal(t, "NaN", out["total_rooms"])
	assert.Equal(t, "Infinity", out["star_rating"])
}

func TestHandler(t *testing.T) {
	router := chi.NewRouter()
	NewHandler(Default()).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/venue-types", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []Config `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 4)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/venue-types/function_hall", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hall_type"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/venue-types/spaceport", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
