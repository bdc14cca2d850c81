package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

const collectionColumns = `id, name, url, is_default, created_at`

var collectionsList = listQuery{
	table:      "movie_collections",
	columns:    collectionColumns,
	searchable: []string{"name", "url"},
	orderBy:    "is_default DESC, created_at DESC, id DESC",
}

type PostgresCollectionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCollectionRepository(db *pgxpool.Pool) *PostgresCollectionRepository {
	return &PostgresCollectionRepository{
		db: db,
	}
}

func (p *PostgresCollectionRepository) GetAll(
	ctx context.Context,
	filters domain.ListFilters,
) ([]*domain.MovieCollection, error) {
	query, args := collectionsList.selectSQL(filters.Normalize())

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("list collections", err)
	}
	defer rows.Close()

	collections := []*domain.MovieCollection{}

	for rows.Next() {
		var collection domain.MovieCollection

		err := scanCollection(rows, &collection)
		if err != nil {
			return nil, wrapError("scan collection", err)
		}

		collections = append(collections, &collection)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapError("list collections", err)
	}

	return collections, nil
}

func (p *PostgresCollectionRepository) Count(ctx context.Context, search string) (int64, error) {
	query, args := collectionsList.countSQL(search)

	var total int64

	err := p.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, wrapError("count collections", err)
	}

	return total, nil
}

func (p *PostgresCollectionRepository) GetById(ctx context.Context, id int) (*domain.MovieCollection, error) {
	query := `SELECT ` + collectionColumns + ` FROM movie_collections WHERE id = $1`

	return p.queryOne(ctx, "get collection", query, id)
}

func (p *PostgresCollectionRepository) Create(
	ctx context.Context,
	input domain.CreateCollectionInput,
) (*domain.MovieCollection, error) {
	query := `INSERT INTO movie_collections (name, url, is_default)
		VALUES ($1, $2, $3)
		RETURNING ` + collectionColumns

	return p.queryOne(ctx, "create collection", query, input.Name, input.Url, input.Default())
}

// Update applies a partial update. Nil fields bind as NULL and COALESCE keeps
// the stored value for them.
func (p *PostgresCollectionRepository) Update(
	ctx context.Context,
	id int,
	input domain.UpdateCollectionInput,
) (*domain.MovieCollection, error) {
	query := `UPDATE movie_collections
		SET
			name = COALESCE($2, name),
			url = COALESCE($3, url),
			is_default = COALESCE($4, is_default)
		WHERE id = $1
		RETURNING ` + collectionColumns

	return p.queryOne(ctx, "update collection", query, id, input.Name, input.Url, input.IsDefault)
}

func (p *PostgresCollectionRepository) Delete(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM movie_collections WHERE id = $1 AND is_default = FALSE`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return false, wrapError("delete collection", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (p *PostgresCollectionRepository) queryOne(
	ctx context.Context,
	op string,
	query string,
	args ...any,
) (*domain.MovieCollection, error) {
	var collection domain.MovieCollection

	err := scanCollection(p.db.QueryRow(ctx, query, args...), &collection)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, wrapError(op, err)
	}

	return &collection, nil
}

func scanCollection(row pgx.Row, collection *domain.MovieCollection) error {
	return row.Scan(
		&collection.ID,
		&collection.Name,
		&collection.Url,
		&collection.IsDefault,
		&collection.CreatedAt,
	)
}
