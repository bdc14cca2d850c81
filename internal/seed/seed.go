// Package seed bulk loads movies from the JSON the frontend produces when a
// movie is created.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-catalog/internal/domain"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/shopspring/decimal"
)

var ErrInvalidMovies = errors.New("invalid movies")

// MovieInput is one entry of the import file. Genres and actors arrive as
// lists and are stored joined.
type MovieInput struct {
	Name        string          `json:"name" validate:"notblank"`
	MovieUrl    string          `json:"movie_url" validate:"http_url"`
	ImageUrl    string          `json:"image_url" validate:"http_url"`
	Description string          `json:"description"`
	Rating      decimal.Decimal `json:"rating"`
	Genres      []string        `json:"genres"`
	Director    string          `json:"director"`
	Actors      []string        `json:"actors"`
}

type Loader struct {
	importer  domain.MovieImporter
	validator *validator.Validate
	logger    *slog.Logger
}

func NewLoader(importer domain.MovieImporter, validator *validator.Validate, logger *slog.Logger) *Loader {
	return &Loader{
		importer:  importer,
		validator: validator,
		logger:    logger,
	}
}

// Load decodes a JSON array of movies from r and imports it. Nothing is
// written when any entry is invalid.
func (l *Loader) Load(ctx context.Context, r io.Reader) (int64, error) {
	var inputs []MovieInput

	err := json.NewDecoder(r).Decode(&inputs)
	if err != nil {
		return 0, fmt.Errorf("decode movies: %w", err)
	}

	movies, err := l.toMovies(inputs)
	if err != nil {
		return 0, err
	}

	if len(movies) == 0 {
		l.logger.Info("nothing to import")
		return 0, nil
	}

	n, err := l.importer.Import(ctx, movies)
	if err != nil {
		return 0, err
	}

	l.logger.Info("imported movies", "count", n)

	return n, nil
}

func (l *Loader) toMovies(inputs []MovieInput) ([]domain.Movie, error) {
	var issues []string
	movies := make([]domain.Movie, 0, len(inputs))

	for i, in := range inputs {
		err := l.validator.Struct(in)
		if err != nil {
			var validationErrors validator.ValidationErrors
			if !errors.As(err, &validationErrors) {
				return nil, err
			}

			for _, e := range validationErrors {
				issues = append(issues, fmt.Sprintf("entry %d: %s %s", i, e.Field(), appvalidator.ValidationMessage(e)))
			}
			continue
		}

		movies = append(movies, domain.Movie{
			Name:        in.Name,
			MovieUrl:    in.MovieUrl,
			ImageUrl:    in.ImageUrl,
			Description: in.Description,
			Rating:      in.Rating,
			Genres:      domain.JoinDelimited(in.Genres),
			Director:    in.Director,
			Actors:      domain.JoinDelimited(in.Actors),
		})
	}

	if len(issues) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMovies, strings.Join(issues, "; "))
	}

	return movies, nil
}
