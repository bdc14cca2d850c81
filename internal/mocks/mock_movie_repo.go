package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc  func(ctx context.Context, filters domain.ListFilters) ([]*domain.Movie, error)
	CountFunc   func(ctx context.Context, search string) (int64, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Movie, error)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.ListFilters) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockMovieRepo) Count(ctx context.Context, search string) (int64, error) {
	return m.CountFunc(ctx, search)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

type MockMovieImporter struct {
	ImportFunc func(ctx context.Context, movies []domain.Movie) (int64, error)
}

func (m *MockMovieImporter) Import(ctx context.Context, movies []domain.Movie) (int64, error) {
	return m.ImportFunc(ctx, movies)
}
