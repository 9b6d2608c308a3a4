package validator_test

import (
	"hotel/shared/failure"
	"hotel/shared/validator"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBody struct {
	Name     string `json:"name"     validate:"required"`
	Duration *int   `json:"duration" validate:"required,gt=0"`
}

type testQuery struct {
	X *int `json:"x" schema:"x" validate:"required,gte=0,lte=99"`
	Y *int `json:"y" schema:"y" validate:"required,gte=0,lte=99"`
}

func intPtr(i int) *int {
	return &i
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *testBody
		expectError bool
	}{
		{
			name:        "valid struct",
			data:        &testBody{Name: "Grand", Duration: intPtr(3)},
			expectError: false,
		},
		{
			name:        "missing required field",
			data:        &testBody{Duration: intPtr(3)},
			expectError: true,
		},
		{
			name:        "zero duration",
			data:        &testBody{Name: "Grand", Duration: intPtr(0)},
			expectError: true,
		},
		{
			name:        "negative duration",
			data:        &testBody{Name: "Grand", Duration: intPtr(-2)},
			expectError: true,
		},
		{
			name:        "missing duration",
			data:        &testBody{Name: "Grand"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
		expectLoc   []string
		expectType  string
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Grand","duration":2}`,
			expectError: false,
		},
		{
			name:        "zero duration",
			jsonBody:    `{"name":"Grand","duration":0}`,
			expectError: true,
			expectLoc:   []string{failure.LocationBody, "duration"},
			expectType:  failure.TypeGreaterThan,
		},
		{
			name:        "wrong type",
			jsonBody:    `{"name":"Grand","duration":"two"}`,
			expectError: true,
			expectLoc:   []string{failure.LocationBody, "duration"},
			expectType:  failure.TypeParsing,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Grand","duration":}`,
			expectError: true,
			expectLoc:   []string{failure.LocationBody},
			expectType:  failure.TypeParsing,
		},
		{
			name:        "trailing content after the object",
			jsonBody:    `{"name":"Grand","duration":2} garbage`,
			expectError: true,
			expectLoc:   []string{failure.LocationBody},
			expectType:  failure.TypeParsing,
		},
		{
			name:        "two JSON objects",
			jsonBody:    `{"name":"Grand","duration":2}{"name":"Other","duration":1}`,
			expectError: true,
			expectLoc:   []string{failure.LocationBody},
			expectType:  failure.TypeParsing,
		},
		{
			name:     "trailing whitespace is allowed",
			jsonBody: "{\"name\":\"Grand\",\"duration\":2}\n  ",
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
			expectLoc:   []string{failure.LocationBody, "name"},
			expectType:  failure.TypeMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data testBody
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

			details := failure.GetDetails(err)
			require.NotEmpty(t, details)
			assert.Equal(t, tt.expectLoc, details[0].Loc)
			assert.Equal(t, tt.expectType, details[0].Type)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	var data testBody
	err := validator.Validate(strings.NewReader(`{}`), &data)

	require.Error(t, err)
	assert.Len(t, failure.GetDetails(err), 2)
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectError bool
		expectLoc   []string
		expectType  string
	}{
		{
			name:  "valid coordinates",
			query: "x=30&y=40",
		},
		{
			name:  "bounds are inclusive",
			query: "x=0&y=99",
		},
		{
			name:  "unknown keys are ignored",
			query: "x=1&y=2&z=3",
		},
		{
			name:        "x above range",
			query:       "x=100&y=40",
			expectError: true,
			expectLoc:   []string{failure.LocationQuery, "x"},
			expectType:  failure.TypeLessThanEqual,
		},
		{
			name:        "y below range",
			query:       "x=10&y=-1",
			expectError: true,
			expectLoc:   []string{failure.LocationQuery, "y"},
			expectType:  failure.TypeGreaterThanEqual,
		},
		{
			name:        "missing y",
			query:       "x=10",
			expectError: true,
			expectLoc:   []string{failure.LocationQuery, "y"},
			expectType:  failure.TypeMissing,
		},
		{
			name:        "empty x",
			query:       "x=&y=5",
			expectError: true,
			expectLoc:   []string{failure.LocationQuery, "x"},
			expectType:  failure.TypeMissing,
		},
		{
			name:        "empty y",
			query:       "x=5&y=",
			expectError: true,
			expectLoc:   []string{failure.LocationQuery, "y"},
			expectType:  failure.TypeMissing,
		},
		{
			name:        "not an integer",
			query:       "x=abc&y=10",
			expectError: true,
			expectLoc:   []string{failure.LocationQuery, "x"},
			expectType:  failure.TypeParsing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			var data testQuery
			err = validator.ValidateQuery(values, &data)

			if !tt.expectError {
				assert.NoError(t, err)
				assert.NotNil(t, data.X)
				assert.NotNil(t, data.Y)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

			details := failure.GetDetails(err)
			require.NotEmpty(t, details)
			assert.Equal(t, tt.expectLoc, details[0].Loc)
			assert.Equal(t, tt.expectType, details[0].Type)
		})
	}
}
