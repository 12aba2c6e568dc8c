// Package http provides the HTTP handler layer for the travel-sample API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travel-sample/travel-sample-api/internal/adapter/http/middleware"
	"github.com/travel-sample/travel-sample-api/internal/adapter/http/response"
	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/logger"
	"github.com/travel-sample/travel-sample-api/internal/usecase"
)

// requestBody is a request DTO that converts to a document of type T.
type requestBody[T any] interface {
	ToDomain() T
}

// documentHandler serves key-value CRUD for one collection.
type documentHandler[T any] struct {
	entity     string
	useCase    usecase.DocumentUseCase[T]
	newRequest func() requestBody[T]
}

func (h documentHandler[T]) decode(c echo.Context) (T, error) {
	req := h.newRequest()
	if err := bindBody(c, req); err != nil {
		var zero T
		return zero, err
	}
	return req.ToDomain(), nil
}

func (h documentHandler[T]) create(c echo.Context) error {
	doc, err := h.decode(c)
	if err != nil {
		return handleError(c, h.entity, err)
	}

	created, err := h.useCase.Create(c.Request().Context(), c.Param("id"), doc)
	if err != nil {
		return handleError(c, h.entity, err)
	}
	return response.Created(c, created)
}

func (h documentHandler[T]) get(c echo.Context) error {
	doc, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, h.entity, err)
	}
	return response.OK(c, doc)
}

func (h documentHandler[T]) update(c echo.Context) error {
	doc, err := h.decode(c)
	if err != nil {
		return handleError(c, h.entity, err)
	}

	updated, err := h.useCase.Update(c.Request().Context(), c.Param("id"), doc)
	if err != nil {
		return handleError(c, h.entity, err)
	}
	return response.OK(c, updated)
}

func (h documentHandler[T]) remove(c echo.Context) error {
	if err := h.useCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return handleError(c, h.entity, err)
	}
	return response.NoContent(c)
}

// handleError maps request and store errors to HTTP responses.
// entity names the resource in 404 and 409 messages.
func handleError(c echo.Context, entity string, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	switch {
	case errors.Is(err, errMalformedBody):
		return response.InvalidRequestBody(c)
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case domain.IsExists(err):
		return response.Conflict(c, entity+" already exists")
	case domain.IsNotFound(err):
		return response.NotFound(c, entity+" not found")
	}

	logger.ForRequest(c.Request().Context(), middleware.GetRequestID(c)).Error().
		Err(err).
		Str("entity", entity).
		Bool("store_unavailable", domain.IsStoreUnavailable(err)).
		Msg("unexpected error")

	return response.InternalServerError(c, "Unexpected error: "+err.Error())
}
