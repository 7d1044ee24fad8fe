package utils

import (
	"errors"
	"mediportal-service/internal/pkg/exceptions"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListArticlesRequest(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/articles", nil)

		request, err := BuildListArticlesRequest(r)

		assert.NoError(t, err)
		assert.Equal(t, DefaultArticleListLimit, request.Limit)
		assert.Empty(t, request.Query)
		assert.Empty(t, request.Category)
		assert.Empty(t, request.Tag)
	})

	t.Run("All Parameters", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/articles?q=cbd&category=Research&tag=epilepsy&limit=5", nil)

		request, err := BuildListArticlesRequest(r)

		assert.NoError(t, err)
		assert.Equal(t, "cbd", request.Query)
		assert.Equal(t, "Research", request.Category)
		assert.Equal(t, "epilepsy", request.Tag)
		assert.Equal(t, 5, request.Limit)
	})

	t.Run("Non Numeric Limit", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/articles?limit=many", nil)

		_, err := BuildListArticlesRequest(r)

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, 422, customErr.StatusCode)
	})

	t.Run("Out Of Range Limit Is Kept For Validation", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/articles?limit=101", nil)

		request, err := BuildListArticlesRequest(r)

		assert.NoError(t, err, "range checks happen at validation, not at parse time")
		assert.Equal(t, 101, request.Limit)
		assert.Error(t, ValidateStruct(request), "101 must fail the limit range validation")
	})

	t.Run("Limit Below Minimum Fails Validation", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/articles?limit=0", nil)

		request, err := BuildListArticlesRequest(r)

		assert.NoError(t, err)
		assert.Error(t, ValidateStruct(request))
	})
}

func TestBuildListDoctorsRequest(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/doctors", nil)

		request, err := BuildListDoctorsRequest(r)

		assert.NoError(t, err)
		assert.Equal(t, DefaultDoctorListLimit, request.Limit)
		assert.Nil(t, request.PriceMax)
	})

	t.Run("All Parameters", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/doctors?specialty=Neurology&state=SP&city=Campinas&pathology=Insomnia&consultation_type=telemedicine&price_max=150.5&limit=10", nil)

		request, err := BuildListDoctorsRequest(r)

		assert.NoError(t, err)
		assert.Equal(t, "Neurology", request.Specialty)
		assert.Equal(t, "SP", request.State)
		assert.Equal(t, "Campinas", request.City)
		assert.Equal(t, "Insomnia", request.Pathology)
		assert.Equal(t, "telemedicine", request.ConsultationType)
		assert.NotNil(t, request.PriceMax)
		assert.Equal(t, 150.5, *request.PriceMax)
		assert.Equal(t, 10, request.Limit)
	})

	t.Run("Non Numeric Price Max", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/doctors?price_max=cheap", nil)

		_, err := BuildListDoctorsRequest(r)

		assert.Error(t, err)
	})

	t.Run("Negative Price Max Fails Validation", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/doctors?price_max=-1", nil)

		request, err := BuildListDoctorsRequest(r)

		assert.NoError(t, err)
		assert.Error(t, ValidateStruct(request))
	})
}
