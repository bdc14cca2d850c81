package app

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/movie-catalog/api"
	"github.com/riandyrn/otelchi"
)

const apiBaseURL = "/api/v1"

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	// The frontend only answers paths no route claims, so a wrong method on an
	// API path still gets 405.
	notFound := app.notFoundResponse
	if static := app.staticHandler(); static != nil {
		notFound = static.ServeHTTP
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(allowAnyOrigin())

	api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseURL:          apiBaseURL,
		BaseRouter:       r,
		ErrorHandlerFunc: app.badRequestResponse,
	})

	// The generated router only knows PUT; PATCH shares the same partial
	// update semantics.
	r.Patch(apiBaseURL+"/movie-collections/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			app.badRequestResponse(w, r, &api.InvalidParamFormatError{ParamName: "id", Err: err})
			return
		}
		app.UpdateMovieCollection(w, r, id)
	})

	r.Get(apiBaseURL+"/openapi.json", app.GetOpenAPISpec)

	return r
}
