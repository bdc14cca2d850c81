package app

import (
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "UP", http.StatusOK

	if app.db != nil {
		if err := app.db.Ping(r.Context()); err != nil {
			app.logError(r, err)
			status, code = "DOWN", http.StatusServiceUnavailable
		}
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
	}

	err := app.writeJSON(w, code, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
