package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/stretchr/testify/require"
)

// Columns the database fills in on its own.
var keysToIgnore = map[string]struct{}{
	"request_id": {},
	"created_at": {},
	"updated_at": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		cleanValue(m[k])
	}
}

func cleanValue(v any) {
	switch v := v.(type) {
	case map[string]any:
		cleanMap(v)
	case []any:
		for _, item := range v {
			cleanValue(item)
		}
	}
}

func decodeBody[T any](t testing.TB, res *http.Response) T {
	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	return v
}

func defaultTestMovie() domain.Movie {
	return domain.Movie{
		Name:        TestMovieName,
		MovieUrl:    TestMovieUrl,
		ImageUrl:    TestMovieImageUrl,
		Description: TestMovieDescription,
		Rating:      TestMovieRating,
		Genres:      TestMovieGenres,
		Director:    TestMovieDirector,
		Actors:      TestMovieActors,
	}
}

func truncateMovies(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE movies RESTART IDENTITY")
	require.NoError(t, err)
}

// insertTestMovie stores m with created_at shifted back by age so list order
// is deterministic.
func insertTestMovie(t testing.TB, db *pgxpool.Pool, m domain.Movie, age time.Duration) {
	_, err := db.Exec(context.Background(), `
		INSERT INTO movies (name, movie_url, image_url, description, rating, genres, director, actors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			NOW() - make_interval(secs => $9), NOW() - make_interval(secs => $9))`,
		m.Name, m.MovieUrl, m.ImageUrl, m.Description, m.Rating.InexactFloat64(), m.Genres, m.Director, m.Actors,
		age.Seconds(),
	)
	require.NoError(t, err)
}

// resetCollections leaves only the seeded default collection behind.
func resetCollections(t testing.TB, db *pgxpool.Pool) {
	ctx := context.Background()

	_, err := db.Exec(ctx, "TRUNCATE TABLE movie_collections RESTART IDENTITY")
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO movie_collections (name, url, is_default)
		VALUES ($1, $2, TRUE)`, DefaultCollectionName, DefaultCollectionUrl)
	require.NoError(t, err)
}

func insertTestCollection(t testing.TB, db *pgxpool.Pool, name, url string, isDefault bool) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO movie_collections (name, url, is_default)
		VALUES ($1, $2, $3)
		RETURNING id`, name, url, isDefault).Scan(&id)
	require.NoError(t, err)
	return id
}

func countCollections(t testing.TB, db *pgxpool.Pool) int {
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM movie_collections").Scan(&n)
	require.NoError(t, err)
	return n
}
