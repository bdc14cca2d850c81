package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request, params api.ListMoviesParams) {
	filters := toListFilters(params.Page, params.Limit, params.Search)

	movies, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieList{
		Movies: toApiMovies(movies),
		Total:  app.countOrZero(r, app.movieRepo.Count, filters.Search),
		Page:   int32(filters.Page),
		Limit:  int32(filters.PageSize),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request, id int) {
	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, ErrMovieNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// toListFilters applies the defaults for omitted parameters and clamps the
// rest into range.
func toListFilters(page, limit *int32, search *string) domain.ListFilters {
	filters := domain.ListFilters{
		Page:     domain.DefaultPage,
		PageSize: domain.DefaultPageSize,
	}

	if page != nil {
		filters.Page = int(*page)
	}
	if limit != nil {
		filters.PageSize = int(*limit)
	}
	if search != nil {
		filters.Search = *search
	}

	return filters.Normalize()
}

// countOrZero runs count for the list envelope. A failed count is logged and
// reported as zero so the page itself is still served.
func (app *Application) countOrZero(
	r *http.Request,
	count func(ctx context.Context, search string) (int64, error),
	search string,
) int64 {
	total, err := count(r.Context(), search)
	if err != nil {
		app.logger.Warn("count failed, reporting zero total",
			"error", err,
			"method", r.Method,
			"uri", r.URL.RequestURI())
		return 0
	}

	return total
}

func toApiMovies(movies []*domain.Movie) []api.Movie {
	result := make([]api.Movie, len(movies))

	for i, movie := range movies {
		result[i] = toApiMovie(movie)
	}

	return result
}

func toApiMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	return api.Movie{
		Id:          movie.ID,
		Name:        movie.Name,
		MovieUrl:    movie.MovieUrl,
		ImageUrl:    movie.ImageUrl,
		Description: movie.Description,
		Rating:      float32(movie.Rating.InexactFloat64()),
		Genres:      movie.GenreList(),
		Director:    movie.Director,
		Actors:      movie.ActorList(),
		StorageType: domain.StorageServerDB,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}
