package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-sample/travel-sample-api/internal/adapter/http/response"
	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/timeutil"
)

// fakeDocuments is an in-memory DocumentUseCase.
type fakeDocuments[T any] struct {
	docs map[string]T
	err  error
}

func newFakeDocuments[T any]() *fakeDocuments[T] {
	return &fakeDocuments[T]{docs: map[string]T{}}
}

func (f *fakeDocuments[T]) Create(ctx context.Context, id string, doc T) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.docs[id]; ok {
		return nil, domain.NewStoreError("insert", "test", id, domain.ErrDocumentExists)
	}
	f.docs[id] = doc
	return &doc, nil
}

func (f *fakeDocuments[T]) Get(ctx context.Context, id string) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.NewStoreError("get", "test", id, domain.ErrDocumentNotFound)
	}
	return &doc, nil
}

func (f *fakeDocuments[T]) Update(ctx context.Context, id string, doc T) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.docs[id] = doc
	return &doc, nil
}

func (f *fakeDocuments[T]) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.docs[id]; !ok {
		return domain.NewStoreError("remove", "test", id, domain.ErrDocumentNotFound)
	}
	delete(f.docs, id)
	return nil
}

type fakeAirports struct {
	*fakeDocuments[domain.Airport]
	listFunc   func(ctx context.Context, filter domain.ListFilter) ([]domain.Airport, error)
	directFunc func(ctx context.Context, airport string, page domain.Page) ([]domain.Destination, error)
}

func (f *fakeAirports) List(ctx context.Context, filter domain.ListFilter) ([]domain.Airport, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, filter)
	}
	return []domain.Airport{}, nil
}

func (f *fakeAirports) DirectConnections(ctx context.Context, airport string, page domain.Page) ([]domain.Destination, error) {
	if f.directFunc != nil {
		return f.directFunc(ctx, airport, page)
	}
	return []domain.Destination{}, nil
}

type fakeAirlines struct {
	*fakeDocuments[domain.Airline]
	listFunc      func(ctx context.Context, filter domain.ListFilter) ([]domain.Airline, error)
	toAirportFunc func(ctx context.Context, airport string, page domain.Page) ([]domain.Airline, error)
}

func (f *fakeAirlines) List(ctx context.Context, filter domain.ListFilter) ([]domain.Airline, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, filter)
	}
	return []domain.Airline{}, nil
}

func (f *fakeAirlines) ToAirport(ctx context.Context, airport string, page domain.Page) ([]domain.Airline, error) {
	if f.toAirportFunc != nil {
		return f.toAirportFunc(ctx, airport, page)
	}
	return []domain.Airline{}, nil
}

type fakeHotels struct {
	autocompleteFunc func(ctx context.Context, name string) ([]domain.HotelName, error)
	filterFunc       func(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error)
}

func (f *fakeHotels) Autocomplete(ctx context.Context, name string) ([]domain.HotelName, error) {
	if f.autocompleteFunc != nil {
		return f.autocompleteFunc(ctx, name)
	}
	return []domain.HotelName{}, nil
}

func (f *fakeHotels) Filter(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error) {
	if f.filterFunc != nil {
		return f.filterFunc(ctx, filter, page)
	}
	return []domain.Hotel{}, nil
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type testServer struct {
	e        *echo.Echo
	airports *fakeAirports
	airlines *fakeAirlines
	routes   *fakeDocuments[domain.Route]
	hotels   *fakeHotels
	pingErr  error
}

// setupTestServer creates a test Echo instance with every route registered on fakes.
func setupTestServer() *testServer {
	s := &testServer{
		e:        echo.New(),
		airports: &fakeAirports{fakeDocuments: newFakeDocuments[domain.Airport]()},
		airlines: &fakeAirlines{fakeDocuments: newFakeDocuments[domain.Airline]()},
		routes:   newFakeDocuments[domain.Route](),
		hotels:   &fakeHotels{},
	}

	clock := timeutil.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	RegisterRoutes(s.e, Handlers{
		Airport: NewAirportHandler(s.airports),
		Airline: NewAirlineHandler(s.airlines),
		Route:   NewRouteHandler(s.routes),
		Hotel:   NewHotelHandler(s.hotels),
		Health: NewHealthHandler(pingerFunc(func(ctx context.Context) error {
			return s.pingErr
		}), clock),
	})
	return s
}

// makeRequest is a helper to make test requests. A string body is sent verbatim.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	default:
		reqBody, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func validAirport() AirportRequest {
	return AirportRequest{
		AirportName: "Calais Dunkerque",
		City:        "Calais",
		Country:     "France",
		FAA:         "CQF",
		ICAO:        strPtr("LFAC"),
		TZ:          strPtr("Europe/Paris"),
	}
}

// =====================================================
// Document CRUD
// =====================================================

func TestAirportHandler_CRUDRoundTrip(t *testing.T) {
	s := setupTestServer()
	body := validAirport()

	rec := makeRequest(s.e, http.MethodPost, "/api/v1/airport/airport_1254", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"airportname":"Calais Dunkerque","city":"Calais","country":"France",
		"faa":"CQF","icao":"LFAC","tz":"Europe/Paris"}`, rec.Body.String())

	rec = makeRequest(s.e, http.MethodGet, "/api/v1/airport/airport_1254", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Airport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, body.ToDomain(), got)

	body.City = "Marck"
	rec = makeRequest(s.e, http.MethodPut, "/api/v1/airport/airport_1254", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Marck", s.airports.docs["airport_1254"].City)

	rec = makeRequest(s.e, http.MethodDelete, "/api/v1/airport/airport_1254", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = makeRequest(s.e, http.MethodGet, "/api/v1/airport/airport_1254", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Airport not found", decodeError(t, rec).Message)
}

func TestDocumentHandlers_StoreErrors(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		body        interface{}
		prepare     func(s *testServer)
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:   "duplicate airline",
			method: http.MethodPost,
			path:   "/api/v1/airline/airline_10",
			body:   AirlineRequest{Name: "40-Mile Air", Callsign: "MILE-AIR", Country: "United States"},
			prepare: func(s *testServer) {
				s.airlines.docs["airline_10"] = domain.Airline{Name: "40-Mile Air"}
			},
			wantStatus:  http.StatusConflict,
			wantCode:    response.CodeConflict,
			wantMessage: "Airline already exists",
		},
		{
			name:        "missing route",
			method:      http.MethodGet,
			path:        "/api/v1/route/route_404",
			wantStatus:  http.StatusNotFound,
			wantCode:    response.CodeNotFound,
			wantMessage: "Route not found",
		},
		{
			name:        "delete missing airline",
			method:      http.MethodDelete,
			path:        "/api/v1/airline/airline_404",
			wantStatus:  http.StatusNotFound,
			wantCode:    response.CodeNotFound,
			wantMessage: "Airline not found",
		},
		{
			name:   "unexpected store failure",
			method: http.MethodGet,
			path:   "/api/v1/airport/airport_1254",
			prepare: func(s *testServer) {
				s.airports.err = errors.New("ambiguous timeout")
			},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    response.CodeInternalError,
			wantMessage: "Unexpected error: ambiguous timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer()
			if tt.prepare != nil {
				tt.prepare(s)
			}

			rec := makeRequest(s.e, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.Equal(t, tt.wantMessage, detail.Message)
		})
	}
}

func TestDocumentHandlers_Validation(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       interface{}
		wantErrors map[string]string
	}{
		{
			name: "airport missing required fields",
			path: "/api/v1/airport/airport_1",
			body: map[string]string{"faa": "CQF"},
			wantErrors: map[string]string{
				"airportname": "'airportname' is a required property",
				"city":        "'city' is a required property",
				"country":     "'country' is a required property",
			},
		},
		{
			name: "airport with unknown timezone",
			path: "/api/v1/airport/airport_1",
			body: func() AirportRequest {
				a := validAirport()
				a.TZ = strPtr("Mars/Olympus_Mons")
				return a
			}(),
			wantErrors: map[string]string{"tz": "'tz' is not a valid IANA timezone"},
		},
		{
			name: "airline missing callsign",
			path: "/api/v1/airline/airline_1",
			body: AirlineRequest{Name: "40-Mile Air", Country: "United States"},
			wantErrors: map[string]string{
				"callsign": "'callsign' is a required property",
			},
		},
		{
			name: "airline with empty name",
			path: "/api/v1/airline/airline_1",
			body: `{"name":"","callsign":"MILE-AIR","country":"United States"}`,
			wantErrors: map[string]string{
				"name": "'name' is a required property",
			},
		},
		{
			name: "route stops as text",
			path: "/api/v1/route/route_1",
			body: `{"airline":"AF","airlineid":"airline_137","sourceairport":"TLV",
				"destinationairport":"MRS","stops":"none"}`,
			wantErrors: map[string]string{"stops": "'stops' is not of type 'integer'"},
		},
		{
			name: "route schedule day out of range",
			path: "/api/v1/route/route_1",
			body: RouteRequest{
				Airline: "AF", AirlineID: "airline_137", SourceAirport: "TLV", DestinationAirport: "MRS",
				Schedule: &[]ScheduleDTO{{Day: intPtr(0)}, {Day: intPtr(9)}},
			},
			wantErrors: map[string]string{"schedule[1].day": "'day' must be at most 6"},
		},
		{
			name: "route negative stops",
			path: "/api/v1/route/route_1",
			body: RouteRequest{
				Airline: "AF", AirlineID: "airline_137", SourceAirport: "TLV", DestinationAirport: "MRS",
				Stops: intPtr(-1),
			},
			wantErrors: map[string]string{"stops": "'stops' must be at least 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer()

			rec := makeRequest(s.e, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Equal(t, response.MsgValidationFailed, detail.Message)
			assert.Equal(t, tt.wantErrors, detail.Details)
		})
	}
}

func TestDocumentHandlers_MalformedBody(t *testing.T) {
	s := setupTestServer()

	rec := makeRequest(s.e, http.MethodPut, "/api/v1/airline/airline_10", `{"name": "40-Mile Air",`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
	assert.Equal(t, response.MsgInvalidRequestBody, detail.Message)
	assert.Empty(t, s.airlines.docs)
}

func TestRouteHandler_OptionalFieldsRoundTrip(t *testing.T) {
	s := setupTestServer()
	body := `{"airline":"AF","airlineid":"airline_137","sourceairport":"TLV","destinationairport":"MRS",
		"stops":0,"equipment":"320","distance":2881.617376098415,
		"schedule":[{"day":0,"flight":"AF198","utc":"10:13:00"}]}`

	rec := makeRequest(s.e, http.MethodPost, "/api/v1/route/route_10000", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, body, rec.Body.String(), "zero stops and day survive the round trip")

	minimal := `{"airline":"AF","airlineid":"airline_137","sourceairport":"TLV","destinationairport":"MRS"}`
	rec = makeRequest(s.e, http.MethodPut, "/api/v1/route/route_10001", minimal)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, minimal, rec.Body.String(), "absent optional fields stay absent")
}

func TestRouteHandler_EmptyScheduleRoundTrip(t *testing.T) {
	s := setupTestServer()
	body := `{"airline":"AF","airlineid":"airline_137","sourceairport":"TLV","destinationairport":"MRS",
		"schedule":[]}`

	rec := makeRequest(s.e, http.MethodPost, "/api/v1/route/route_10002", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, body, rec.Body.String())

	rec = makeRequest(s.e, http.MethodGet, "/api/v1/route/route_10002", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, rec.Body.String(), "an empty schedule is kept, not dropped")
}

// =====================================================
// List and relationship queries
// =====================================================

func TestAirportHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFilter domain.ListFilter
	}{
		{
			name:       "defaults",
			query:      "",
			wantFilter: domain.ListFilter{Page: domain.Page{Limit: 10, Offset: 0}},
		},
		{
			name:       "country and page",
			query:      "?country=United%20Kingdom&limit=5&offset=15",
			wantFilter: domain.ListFilter{Country: "United Kingdom", Page: domain.Page{Limit: 5, Offset: 15}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer()
			var captured domain.ListFilter
			s.airports.listFunc = func(ctx context.Context, filter domain.ListFilter) ([]domain.Airport, error) {
				captured = filter
				return []domain.Airport{{AirportName: "Heathrow", Country: "United Kingdom"}}, nil
			}

			rec := makeRequest(s.e, http.MethodGet, "/api/v1/airport/list"+tt.query, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantFilter, captured)
			assert.Contains(t, rec.Body.String(), `"airportname":"Heathrow"`)
		})
	}
}

func TestListHandlers_InvalidPage(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantErrors map[string]string
	}{
		{
			name:       "limit above maximum",
			path:       "/api/v1/airport/list?limit=101",
			wantErrors: map[string]string{"limit": "limit must be between 1 and 100"},
		},
		{
			name:       "zero limit",
			path:       "/api/v1/airline/list?limit=0",
			wantErrors: map[string]string{"limit": "limit must be between 1 and 100"},
		},
		{
			name:       "negative offset",
			path:       "/api/v1/airline/to-airport?airport=SFO&offset=-1",
			wantErrors: map[string]string{"offset": "offset must not be negative"},
		},
		{
			name:       "non-integer limit",
			path:       "/api/v1/airport/direct-connections?airport=SFO&limit=ten",
			wantErrors: map[string]string{"limit": "'limit' is not of type 'integer'"},
		},
		{
			name:       "missing airport",
			path:       "/api/v1/airport/direct-connections",
			wantErrors: map[string]string{"airport": "'airport' is a required property"},
		},
		{
			name:       "blank airport",
			path:       "/api/v1/airline/to-airport?airport=%20",
			wantErrors: map[string]string{"airport": "'airport' is a required property"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer()

			rec := makeRequest(s.e, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Equal(t, tt.wantErrors, detail.Details)
		})
	}
}

func TestAirportHandler_DirectConnections(t *testing.T) {
	s := setupTestServer()
	s.airports.directFunc = func(ctx context.Context, airport string, page domain.Page) ([]domain.Destination, error) {
		assert.Equal(t, "SFO", airport)
		assert.Equal(t, domain.Page{Limit: 2, Offset: 4}, page)
		return []domain.Destination{{DestinationAirport: "ACV"}, {DestinationAirport: "ANC"}}, nil
	}

	rec := makeRequest(s.e, http.MethodGet, "/api/v1/airport/direct-connections?airport=SFO&limit=2&offset=4", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"destinationairport":"ACV"},{"destinationairport":"ANC"}]`, rec.Body.String())
}

func TestAirlineHandler_ListAndToAirport(t *testing.T) {
	s := setupTestServer()
	s.airlines.listFunc = func(ctx context.Context, filter domain.ListFilter) ([]domain.Airline, error) {
		assert.Equal(t, "France", filter.Country)
		return []domain.Airline{{Name: "Air France", Country: "France"}}, nil
	}
	s.airlines.toAirportFunc = func(ctx context.Context, airport string, page domain.Page) ([]domain.Airline, error) {
		assert.Equal(t, "MRS", airport)
		return nil, errors.New("index not ready")
	}

	rec := makeRequest(s.e, http.MethodGet, "/api/v1/airline/list?country=France", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Air France")

	rec = makeRequest(s.e, http.MethodGet, "/api/v1/airline/to-airport?airport=MRS", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Unexpected error: index not ready", decodeError(t, rec).Message)
}

// =====================================================
// Hotel search
// =====================================================

func TestHotelHandler_Autocomplete(t *testing.T) {
	s := setupTestServer()
	s.hotels.autocompleteFunc = func(ctx context.Context, name string) ([]domain.HotelName, error) {
		assert.Equal(t, "sea", name)
		return []domain.HotelName{{Name: "Seal View"}}, nil
	}

	rec := makeRequest(s.e, http.MethodGet, "/api/v1/hotel/autocomplete?name=sea", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Seal View"}]`, rec.Body.String())

	rec = makeRequest(s.e, http.MethodGet, "/api/v1/hotel/autocomplete", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"name": "'name' is a required property"}, decodeError(t, rec).Details)
}

func TestHotelHandler_Filter(t *testing.T) {
	s := setupTestServer()
	var captured domain.HotelFilter
	var capturedPage domain.Page
	s.hotels.filterFunc = func(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error) {
		captured, capturedPage = filter, page
		return []domain.Hotel{{Name: "Carmel Resort", City: "Carmel"}}, nil
	}

	rec := makeRequest(s.e, http.MethodPost, "/api/v1/hotel/filter?limit=3&offset=6",
		HotelFilterRequest{Description: "newly renovated", Country: "United States"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.HotelFilter{Description: "newly renovated", Country: "United States"}, captured)
	assert.Equal(t, domain.Page{Limit: 3, Offset: 6}, capturedPage)
	assert.Contains(t, rec.Body.String(), "Carmel Resort")
}

func TestHotelHandler_FilterWithoutCriteria(t *testing.T) {
	s := setupTestServer()
	s.hotels.filterFunc = func(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error) {
		return nil, domain.NewValidationError("filter", "at least one field is required")
	}

	rec := makeRequest(s.e, http.MethodPost, "/api/v1/hotel/filter", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"filter": "at least one field is required"}, decodeError(t, rec).Details)
}

// =====================================================
// Operational endpoints
// =====================================================

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "store reachable",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","time":"2026-03-01T12:00:00Z"}`,
		},
		{
			name:       "store unreachable",
			pingErr:    domain.ErrStoreUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","time":"2026-03-01T12:00:00Z","error":"document store unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer()
			s.pingErr = tt.pingErr

			rec := makeRequest(s.e, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRoutes_Operational(t *testing.T) {
	s := setupTestServer()

	rec := makeRequest(s.e, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/swagger/index.html", rec.Header().Get(echo.HeaderLocation))

	rec = makeRequest(s.e, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = makeRequest(s.e, http.MethodGet, "/api/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.CodeNotFound, decodeError(t, rec).Code)
}
