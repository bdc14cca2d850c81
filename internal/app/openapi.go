package app

import (
	"net/http"
	"sync"

	"github.com/metinatakli/movie-catalog/api"
)

var loadSwagger = sync.OnceValues(api.GetSwagger)

func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	swagger, err := loadSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
