package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

type MockCollectionRepo struct {
	domain.CollectionRepository
	GetAllFunc  func(ctx context.Context, filters domain.ListFilters) ([]*domain.MovieCollection, error)
	CountFunc   func(ctx context.Context, search string) (int64, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.MovieCollection, error)
	CreateFunc  func(ctx context.Context, input domain.CreateCollectionInput) (*domain.MovieCollection, error)
	UpdateFunc  func(ctx context.Context, id int, input domain.UpdateCollectionInput) (*domain.MovieCollection, error)
	DeleteFunc  func(ctx context.Context, id int) (bool, error)
}

func (m *MockCollectionRepo) GetAll(ctx context.Context, filters domain.ListFilters) ([]*domain.MovieCollection, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockCollectionRepo) Count(ctx context.Context, search string) (int64, error) {
	return m.CountFunc(ctx, search)
}

func (m *MockCollectionRepo) GetById(ctx context.Context, id int) (*domain.MovieCollection, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockCollectionRepo) Create(
	ctx context.Context,
	input domain.CreateCollectionInput,
) (*domain.MovieCollection, error) {
	return m.CreateFunc(ctx, input)
}

func (m *MockCollectionRepo) Update(
	ctx context.Context,
	id int,
	input domain.UpdateCollectionInput,
) (*domain.MovieCollection, error) {
	return m.UpdateFunc(ctx, id, input)
}

func (m *MockCollectionRepo) Delete(ctx context.Context, id int) (bool, error) {
	return m.DeleteFunc(ctx, id)
}
