package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/mocks"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/shopspring/decimal"
)

func newTestLoader(importFunc func(context.Context, []domain.Movie) (int64, error)) *Loader {
	return NewLoader(
		&mocks.MockMovieImporter{ImportFunc: importFunc},
		appvalidator.NewValidator(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		importErr  error
		wantMovies []domain.Movie
		wantCount  int64
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "joins list fields",
			input: `[
				{
					"name": "Inception",
					"movie_url": "https://example.com/inception.mp4",
					"image_url": "http://example.com/inception.jpg",
					"description": "Dreams within dreams",
					"rating": 8.8,
					"genres": ["Action", "Sci-Fi"],
					"director": "Christopher Nolan",
					"actors": ["Leonardo DiCaprio", "Elliot Page"]
				},
				{
					"name": "Short",
					"movie_url": "https://example.com/short.mp4",
					"image_url": "https://example.com/short.jpg",
					"rating": "6.1"
				}
			]`,
			wantMovies: []domain.Movie{
				{
					Name:        "Inception",
					MovieUrl:    "https://example.com/inception.mp4",
					ImageUrl:    "http://example.com/inception.jpg",
					Description: "Dreams within dreams",
					Rating:      decimal.RequireFromString("8.8"),
					Genres:      "Action, Sci-Fi",
					Director:    "Christopher Nolan",
					Actors:      "Leonardo DiCaprio, Elliot Page",
				},
				{
					Name:     "Short",
					MovieUrl: "https://example.com/short.mp4",
					ImageUrl: "https://example.com/short.jpg",
					Rating:   decimal.RequireFromString("6.1"),
				},
			},
			wantCount: 2,
		},
		{
			name:      "empty array",
			input:     `[]`,
			wantCount: 0,
		},
		{
			name: "every invalid entry is reported",
			input: `[
				{"name": "", "movie_url": "https://example.com/a.mp4", "image_url": "https://example.com/a.jpg"},
				{"name": "Fine", "movie_url": "https://example.com/b.mp4", "image_url": "https://example.com/b.jpg"},
				{"name": "Bad url", "movie_url": "ftp://example.com/c.mp4", "image_url": "https://example.com/c.jpg"}
			]`,
			wantErr:    ErrInvalidMovies,
			wantErrMsg: "entry 0: Name must not be blank; entry 2: MovieUrl must be an http or https URL",
		},
		{
			name:       "not an array",
			input:      `{"name": "Inception"}`,
			wantErrMsg: "decode movies",
		},
		{
			name:      "import failure",
			input:     `[{"name": "A", "movie_url": "https://example.com/a.mp4", "image_url": "https://example.com/a.jpg"}]`,
			importErr: domain.ErrConstraintViolation,
			wantErr:   domain.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMovies []domain.Movie

			loader := newTestLoader(func(ctx context.Context, movies []domain.Movie) (int64, error) {
				gotMovies = movies
				if tt.importErr != nil {
					return 0, tt.importErr
				}
				return int64(len(movies)), nil
			})

			n, err := loader.Load(context.Background(), strings.NewReader(tt.input))

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErrMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Fatalf("Load() error = %v, want containing %q", err, tt.wantErrMsg)
				}
			}

			if tt.wantErr == nil && tt.wantErrMsg == "" && err != nil {
				t.Fatalf("Load() unexpected error = %v", err)
			}

			if n != tt.wantCount {
				t.Errorf("Load() count = %d, want %d", n, tt.wantCount)
			}

			if tt.wantMovies != nil {
				if diff := cmp.Diff(tt.wantMovies, gotMovies); diff != "" {
					t.Errorf("Load() movies mismatch (-want +got):\n%s", diff)
				}
			}

			if tt.wantErr == ErrInvalidMovies && gotMovies != nil {
				t.Error("Load() imported movies despite invalid entries")
			}
		})
	}
}
