package repository

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEdgeListNotFound is returned when no edge list matches the lookup.
var ErrEdgeListNotFound = errors.New("edge list not found")

// EdgeListRepository defines the persistence operations for edge lists.
// Mutations are applied in place so that concurrent writers never overwrite each other.
type EdgeListRepository interface {
	// FindByID retrieves a single edge list by its ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.EdgeList, error)

	// Create persists a new edge list.
	Create(ctx context.Context, list *entity.EdgeList) error

	// AddID inserts id into the list unless present and reports whether the list changed.
	AddID(ctx context.Context, listID, id primitive.ObjectID) (bool, error)

	// RemoveID removes id from the list and reports whether the list changed.
	RemoveID(ctx context.Context, listID, id primitive.ObjectID) (bool, error)

	// FindEmptyIDs returns the IDs of every edge list that holds no IDs.
	FindEmptyIDs(ctx context.Context) ([]primitive.ObjectID, error)
}
