package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-sample/travel-sample-api/internal/domain"
)

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("airportname", "'airportname' is a required property")
	errs.Add("city", "'city' is a required property")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "'airportname' is a required property", errs.Error())
	assert.Equal(t, map[string]string{
		"airportname": "'airportname' is a required property",
		"city":        "'city' is a required property",
	}, errs.ToMap())
}

func TestValidator_AcceptsValidRequests(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  interface{}
	}{
		{name: "airport", req: func() *AirportRequest { a := validAirport(); return &a }()},
		{name: "airline", req: &AirlineRequest{Name: "40-Mile Air", Callsign: "MILE-AIR", Country: "United States"}},
		{name: "empty hotel filter", req: &HotelFilterRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, v.Validate(tt.req))
		})
	}
}

func TestValidator_Geo(t *testing.T) {
	v := NewValidator()
	lat, lon := 95.0, 1.95
	req := validAirport()
	req.Geo = &GeoDTO{Lat: &lat, Lon: &lon}

	err := v.Validate(&req)

	var errs *ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.True(t, errs.HasErrors())
	assert.Equal(t, map[string]string{"geo.lat": "'lat' must be between -90 and 90"}, errs.ToMap())
}

func TestValidator_NonStructPassesThrough(t *testing.T) {
	err := NewValidator().Validate("not a struct")

	require.Error(t, err)
	var errs *ValidationErrors
	assert.False(t, errors.As(err, &errs))
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "airportname", fieldPath("AirportRequest.airportname"))
	assert.Equal(t, "schedule[2].utc", fieldPath("RouteRequest.schedule[2].utc"))
	assert.Equal(t, "plain", fieldPath("plain"))
}

func TestJSONTypeName(t *testing.T) {
	var (
		i  int
		ip *int
		f  float64
		s  string
		b  bool
		sl *[]ScheduleDTO
		g  GeoDTO
	)

	assert.Equal(t, "integer", jsonTypeName(reflect.TypeOf(i)))
	assert.Equal(t, "integer", jsonTypeName(reflect.TypeOf(ip)))
	assert.Equal(t, "number", jsonTypeName(reflect.TypeOf(f)))
	assert.Equal(t, "string", jsonTypeName(reflect.TypeOf(s)))
	assert.Equal(t, "boolean", jsonTypeName(reflect.TypeOf(b)))
	assert.Equal(t, "array", jsonTypeName(reflect.TypeOf(sl)))
	assert.Equal(t, "object", jsonTypeName(reflect.TypeOf(g)))
	assert.Equal(t, "unknown", jsonTypeName(nil))
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      domain.Page
		wantField string
	}{
		{name: "defaults", query: "", want: domain.Page{Limit: 10, Offset: 0}},
		{name: "explicit", query: "?limit=100&offset=300", want: domain.Page{Limit: 100, Offset: 300}},
		{name: "text offset", query: "?offset=abc", wantField: "offset"},
		{name: "limit too large", query: "?limit=500", wantField: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil), httptest.NewRecorder())

			page, err := parsePage(c)

			if tt.wantField != "" {
				var fieldErr *domain.ValidationError
				require.True(t, errors.As(err, &fieldErr))
				assert.Equal(t, tt.wantField, fieldErr.Field)
				assert.True(t, domain.IsInvalidRequest(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}

func TestConverters_PreserveAbsentFields(t *testing.T) {
	route := (&RouteRequest{Airline: "AF", AirlineID: "airline_137", SourceAirport: "TLV", DestinationAirport: "MRS"}).ToDomain()
	assert.Nil(t, route.Schedule)
	assert.Nil(t, route.Stops)

	empty := (&RouteRequest{Schedule: &[]ScheduleDTO{}}).ToDomain()
	require.NotNil(t, empty.Schedule)
	assert.Empty(t, *empty.Schedule)

	airport := (&AirportRequest{AirportName: "Bray"}).ToDomain()
	assert.Nil(t, airport.Geo)

	filter := (&HotelFilterRequest{City: "Carmel"}).ToDomain()
	assert.Equal(t, domain.HotelFilter{City: "Carmel"}, filter)
}
