package domain

import (
	"context"
	"time"
)

type MovieCollection struct {
	ID        int
	Name      string
	Url       string
	IsDefault bool
	CreatedAt time.Time
}

type CreateCollectionInput struct {
	Name      string
	Url       string
	IsDefault *bool
}

// Default reports the is_default value to store. An omitted flag means false.
func (in CreateCollectionInput) Default() bool {
	return in.IsDefault != nil && *in.IsDefault
}

// UpdateCollectionInput describes a partial update. A nil field keeps the
// stored value; there is no way to clear a column.
type UpdateCollectionInput struct {
	Name      *string
	Url       *string
	IsDefault *bool
}

type CollectionRepository interface {
	GetAll(ctx context.Context, filters ListFilters) ([]*MovieCollection, error)
	Count(ctx context.Context, search string) (int64, error)
	GetById(ctx context.Context, id int) (*MovieCollection, error)
	Create(ctx context.Context, input CreateCollectionInput) (*MovieCollection, error)
	Update(ctx context.Context, id int, input UpdateCollectionInput) (*MovieCollection, error)
	// Delete removes a non-default collection. It returns false both when the
	// id does not exist and when the collection is protected.
	Delete(ctx context.Context, id int) (bool, error)
}
