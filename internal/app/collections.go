package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

func (app *Application) ListMovieCollections(
	w http.ResponseWriter,
	r *http.Request,
	params api.ListMovieCollectionsParams) {

	filters := toListFilters(params.Page, params.Limit, params.Search)

	collections, err := app.collectionRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieCollectionList{
		Collections: toApiCollections(collections),
		Total:       app.countOrZero(r, app.collectionRepo.Count, filters.Search),
		Page:        int32(filters.Page),
		Limit:       int32(filters.PageSize),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieCollection(w http.ResponseWriter, r *http.Request, id int) {
	collection, err := app.collectionRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, ErrCollectionNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCollection(collection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovieCollection(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieCollectionJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	collection, err := app.collectionRepo.Create(r.Context(), domain.CreateCollectionInput{
		Name:      input.Name,
		Url:       input.Url,
		IsDefault: input.IsDefault,
	})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("%s/movie-collections/%d", apiBaseURL, collection.ID))

	err = app.writeJSON(w, http.StatusCreated, toApiCollection(collection), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateMovieCollection serves both PUT and PATCH. Omitted and null fields
// keep their stored values.
func (app *Application) UpdateMovieCollection(w http.ResponseWriter, r *http.Request, id int) {
	var input api.UpdateMovieCollectionJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	collection, err := app.collectionRepo.Update(r.Context(), id, domain.UpdateCollectionInput{
		Name:      input.Name,
		Url:       input.Url,
		IsDefault: input.IsDefault,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, ErrCollectionNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCollection(collection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteMovieCollection answers 404 both for unknown ids and for default
// collections, which are never deleted.
func (app *Application) DeleteMovieCollection(w http.ResponseWriter, r *http.Request, id int) {
	deleted, err := app.collectionRepo.Delete(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !deleted {
		app.errorResponse(w, r, http.StatusNotFound, ErrCollectionNotDeletable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiCollections(collections []*domain.MovieCollection) []api.MovieCollection {
	result := make([]api.MovieCollection, len(collections))

	for i, collection := range collections {
		result[i] = toApiCollection(collection)
	}

	return result
}

func toApiCollection(collection *domain.MovieCollection) api.MovieCollection {
	if collection == nil {
		return api.MovieCollection{}
	}

	return api.MovieCollection{
		Id:        collection.ID,
		Name:      collection.Name,
		Url:       collection.Url,
		IsDefault: collection.IsDefault,
		CreatedAt: collection.CreatedAt,
	}
}
