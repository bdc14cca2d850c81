package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StorageServerDB tags every movie served from the relational store.
const StorageServerDB = "serverDB"

// Movie is a row of the movies table. Genres and Actors are kept in their
// stored, comma delimited form.
type Movie struct {
	ID          int
	Name        string
	MovieUrl    string
	ImageUrl    string
	Description string
	Rating      decimal.Decimal
	Genres      string
	Director    string
	Actors      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m *Movie) GenreList() []string {
	return SplitDelimited(m.Genres)
}

func (m *Movie) ActorList() []string {
	return SplitDelimited(m.Actors)
}

// SplitDelimited splits s on commas and trims every segment. Order and empty
// segments are preserved, so "a,,b" yields three elements.
func SplitDelimited(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}

func JoinDelimited(values []string) string {
	return strings.Join(values, ", ")
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters ListFilters) ([]*Movie, error)
	Count(ctx context.Context, search string) (int64, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}

// MovieImporter bulk loads movies. It is used by the seed command only; the
// HTTP API never writes movies.
type MovieImporter interface {
	Import(ctx context.Context, movies []Movie) (int64, error)
}
