// Package http provides the HTTP handler layer for the travel-sample API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/travel-sample/travel-sample-api/internal/domain"
)

// AirportRequest is the request body for creating or replacing an airport.
type AirportRequest struct {
	// AirportName is the airport's name (e.g., "Calais Dunkerque")
	AirportName string `json:"airportname" validate:"required" example:"Calais Dunkerque"`

	// City is the city the airport serves
	City string `json:"city" validate:"required" example:"Calais"`

	// Country is the country the airport is located in
	Country string `json:"country" validate:"required" example:"France"`

	// FAA is the FAA code
	FAA string `json:"faa" validate:"required" example:"CQF"`

	// ICAO is the ICAO code (optional)
	ICAO *string `json:"icao,omitempty" example:"LFAC"`

	// TZ is the IANA timezone of the airport (optional)
	TZ *string `json:"tz,omitempty" validate:"omitempty,iana_tz" example:"Europe/Paris"`

	// Geo holds the airport coordinates (optional)
	Geo *GeoDTO `json:"geo,omitempty"`
}

// GeoDTO represents airport coordinates.
// Example: {"lat": 50.962097, "lon": 1.954764, "alt": 12}
type GeoDTO struct {
	Lat *float64 `json:"lat,omitempty" validate:"omitempty,latitude" example:"50.962097"`
	Lon *float64 `json:"lon,omitempty" validate:"omitempty,longitude" example:"1.954764"`
	Alt *float64 `json:"alt,omitempty" example:"12"`
}

// AirlineRequest is the request body for creating or replacing an airline.
type AirlineRequest struct {
	// Name is the airline's name
	Name string `json:"name" validate:"required" example:"40-Mile Air"`

	// IATA is the two-letter IATA code (optional)
	IATA *string `json:"iata,omitempty" example:"Q5"`

	// ICAO is the three-letter ICAO code (optional)
	ICAO *string `json:"icao,omitempty" example:"MLA"`

	// Callsign is the radio callsign
	Callsign string `json:"callsign" validate:"required" example:"MILE-AIR"`

	// Country is the country of registration
	Country string `json:"country" validate:"required" example:"United States"`
}

// RouteRequest is the request body for creating or replacing a route.
type RouteRequest struct {
	// Airline is the operating airline's code
	Airline string `json:"airline" validate:"required" example:"AF"`

	// AirlineID is the key of the airline document
	AirlineID string `json:"airlineid" validate:"required" example:"airline_137"`

	// SourceAirport is the departure FAA code
	SourceAirport string `json:"sourceairport" validate:"required" example:"TLV"`

	// DestinationAirport is the arrival FAA code
	DestinationAirport string `json:"destinationairport" validate:"required" example:"MRS"`

	// Stops is the number of stops, 0 for non-stop (optional)
	Stops *int `json:"stops,omitempty" validate:"omitempty,min=0" example:"0"`

	// Equipment lists aircraft types (optional)
	Equipment *string `json:"equipment,omitempty" example:"320"`

	// Schedule lists the weekly flights (optional)
	Schedule *[]ScheduleDTO `json:"schedule,omitempty" validate:"omitempty,dive"`

	// Distance is the route distance in km (optional)
	Distance *float64 `json:"distance,omitempty" validate:"omitempty,min=0" example:"2881.617376098415"`
}

// ScheduleDTO represents one scheduled flight on a route.
// Example: {"day": 0, "flight": "AF198", "utc": "10:13:00"}
type ScheduleDTO struct {
	// Day is the day of week, 0 to 6
	Day *int `json:"day,omitempty" validate:"omitempty,min=0,max=6" example:"0"`

	// Flight is the flight number
	Flight *string `json:"flight,omitempty" example:"AF198"`

	// UTC is the departure time (HH:MM:SS)
	UTC *string `json:"utc,omitempty" example:"10:13:00"`
}

// HotelFilterRequest is the request body for hotel search.
// Name, title and description are matched as full text; city, state and
// country must match exactly. At least one field is required.
type HotelFilterRequest struct {
	Name        string `json:"name,omitempty" example:"Hotel"`
	Title       string `json:"title,omitempty" example:"Carmel"`
	Description string `json:"description,omitempty" example:"newly renovated"`
	City        string `json:"city,omitempty" example:"Carmel"`
	State       string `json:"state,omitempty" example:"California"`
	Country     string `json:"country,omitempty" example:"United States"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// bindBody decodes the JSON body into dst and validates it.
// Decoding failures are returned as echo errors, validation failures as *ValidationErrors.
func bindBody(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return bindError(err)
	}
	return c.Validate(dst)
}

// bindError turns a JSON type mismatch into a field error. Anything else is
// reported as a malformed body.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		errs := &ValidationErrors{}
		errs.Add(typeErr.Field, fmt.Sprintf("'%s' is not of type '%s'",
			leafName(typeErr.Field), jsonTypeName(typeErr.Type)))
		return errs
	}
	return errMalformedBody
}

var errMalformedBody = errors.New("malformed request body")

// parsePage reads limit and offset from the query string, applying defaults.
func parsePage(c echo.Context) (domain.Page, error) {
	page := domain.DefaultPage()

	err := echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Int("offset", &page.Offset).
		BindError()
	if err != nil {
		var bindErr *echo.BindingError
		if errors.As(err, &bindErr) {
			return page, domain.NewValidationError(bindErr.Field,
				fmt.Sprintf("'%s' is not of type 'integer'", bindErr.Field))
		}
		return page, err
	}

	if err := page.Validate(); err != nil {
		return page, err
	}
	return page, nil
}

// requiredQuery returns the trimmed query parameter or a validation error when it is blank.
func requiredQuery(c echo.Context, name string) (string, error) {
	value := strings.TrimSpace(c.QueryParam(name))
	if value == "" {
		return "", domain.NewValidationError(name, requiredMessage(name))
	}
	return value, nil
}

func requiredMessage(field string) string {
	return fmt.Sprintf("'%s' is a required property", field)
}
