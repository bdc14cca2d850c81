package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-catalog/api"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
)

const (
	ErrInternalServer         = "The server encountered a problem and could not process your request"
	ErrNotFound               = "The requested resource not found"
	ErrMethodNotAllowed       = "The method is not supported for this resource"
	ErrFailedValidation       = "One or more fields have invalid values"
	ErrMovieNotFound          = "Movie not found"
	ErrCollectionNotFound     = "Movie collection not found"
	ErrCollectionNotDeletable = "Movie collection not found or cannot delete default collection"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri, "request_id", middleware.GetReqID(r.Context()))
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Error: message,
	}

	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		resp.RequestId = &reqID
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs the cause and answers with a generic message; the
// underlying error never reaches the client.
func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Error:            ErrFailedValidation,
		ValidationErrors: make([]api.ValidationError, len(validationErrors)),
	}

	for i, e := range validationErrors {
		resp.ValidationErrors[i] = api.ValidationError{
			Field: e.Field(),
			Issue: appvalidator.ValidationMessage(e),
		}
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
