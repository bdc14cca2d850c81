package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

const movieColumns = `id, name, movie_url, image_url, description, rating, genres, director, actors, created_at, updated_at`

var moviesList = listQuery{
	table:      "movies",
	columns:    movieColumns,
	searchable: []string{"name", "description", "director"},
	orderBy:    "created_at DESC, id DESC",
}

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.ListFilters) ([]*domain.Movie, error) {
	query, args := moviesList.selectSQL(filters.Normalize())

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("list movies", err)
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := scanMovie(rows, &movie)
		if err != nil {
			return nil, wrapError("scan movie", err)
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapError("list movies", err)
	}

	return movies, nil
}

func (p *PostgresMovieRepository) Count(ctx context.Context, search string) (int64, error) {
	query, args := moviesList.countSQL(search)

	var total int64

	err := p.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, wrapError("count movies", err)
	}

	return total, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie domain.Movie

	err := scanMovie(p.db.QueryRow(ctx, query, id), &movie)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, wrapError("get movie", err)
	}

	return &movie, nil
}

// Import bulk loads movies with COPY. Ids and timestamps are assigned by the
// database.
func (p *PostgresMovieRepository) Import(ctx context.Context, movies []domain.Movie) (int64, error) {
	rows := make([][]any, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []any{
			m.Name,
			m.MovieUrl,
			m.ImageUrl,
			m.Description,
			m.Rating.InexactFloat64(),
			m.Genres,
			m.Director,
			m.Actors,
		})
	}

	n, err := p.db.CopyFrom(
		ctx,
		pgx.Identifier{"movies"},
		[]string{"name", "movie_url", "image_url", "description", "rating", "genres", "director", "actors"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, wrapError("import movies", err)
	}

	return n, nil
}

func scanMovie(row pgx.Row, movie *domain.Movie) error {
	return row.Scan(
		&movie.ID,
		&movie.Name,
		&movie.MovieUrl,
		&movie.ImageUrl,
		&movie.Description,
		&movie.Rating,
		&movie.Genres,
		&movie.Director,
		&movie.Actors,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
}
