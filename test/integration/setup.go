// Package integration provides helpers and integration tests for the travel-sample API.
// Integration tests verify that components work together correctly, including
// middleware, HTTP handlers, use cases and an in-memory document store.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/travel-sample/travel-sample-api/internal/adapter/http"
	"github.com/travel-sample/travel-sample-api/internal/adapter/http/middleware"
	"github.com/travel-sample/travel-sample-api/internal/adapter/http/response"
	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/timeutil"
	"github.com/travel-sample/travel-sample-api/internal/usecase"
	"github.com/travel-sample/travel-sample-api/test/mock"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Store *mock.Store
}

// Options tweaks how NewTestServer wires the stack.
type Options struct {
	// Config is passed to every use case; nil means defaults.
	Config *usecase.Config

	// Cache, if set, wraps the hotel use case with a read-through cache.
	Cache domain.Cache
}

// NewTestServer creates a new test server over store with default options.
func NewTestServer(store *mock.Store) *TestServer {
	return NewTestServerWithOptions(store, Options{})
}

// NewTestServerWithOptions creates a test server with the full middleware
// chain, real use cases and handlers on top of store.
func NewTestServerWithOptions(store *mock.Store, opts Options) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, zerolog.Nop(), middleware.DefaultOptions())

	hotels := usecase.NewHotelUseCase(store, opts.Config)
	if opts.Cache != nil {
		hotels = usecase.NewCachedHotelUseCase(hotels, opts.Cache)
	}

	clock := timeutil.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	httpAdapter.RegisterRoutes(e, httpAdapter.Handlers{
		Airport: httpAdapter.NewAirportHandler(usecase.NewAirportUseCase(store, opts.Config)),
		Airline: httpAdapter.NewAirlineHandler(usecase.NewAirlineUseCase(store, opts.Config)),
		Route:   httpAdapter.NewRouteHandler(usecase.NewRouteUseCase(store, opts.Config)),
		Hotel:   httpAdapter.NewHotelHandler(hotels),
		Health:  httpAdapter.NewHealthHandler(store, clock),
	})

	return &TestServer{Echo: e, Store: store}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	// Body is marshaled to JSON; a string is sent verbatim.
	Body interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var body []byte
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = []byte(b)
	default:
		body, _ = json.Marshal(b)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get is shorthand for a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Post is shorthand for a POST request with a JSON body.
func (ts *TestServer) Post(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put is shorthand for a PUT request with a JSON body.
func (ts *TestServer) Put(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete is shorthand for a DELETE request.
func (ts *TestServer) Delete(path string) Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: path})
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ParseError parses the response body as an error envelope.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
