package mongo

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// edgeListRepository implements the domain.EdgeListRepository interface using MongoDB.
// Membership changes use $addToSet and $pull so concurrent writers never lose each other's updates.
type edgeListRepository struct {
	base
}

// NewEdgeListRepository is the constructor for edgeListRepository.
func NewEdgeListRepository(db *mongo.Database) repository.EdgeListRepository {
	return &edgeListRepository{base: newBase(db, nil)}
}

// FindByID retrieves a single edge list by its ID.
func (repo *edgeListRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.EdgeList, error) {
	var listM model.EdgeListModel
	err := repo.collection(model.EdgeListCollection).FindOne(repo.scope(ctx), bson.M{"_id": id}).Decode(&listM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrEdgeListNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find edge list")
	}

	return model.ToEdgeListDomain(&listM), nil
}

// Create persists a new edge list.
func (repo *edgeListRepository) Create(ctx context.Context, list *entity.EdgeList) error {
	if list.ID.IsZero() {
		list.ID = primitive.NewObjectID()
	}

	if _, err := repo.collection(model.EdgeListCollection).InsertOne(repo.scope(ctx), model.FromEdgeListDomain(list)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create edge list")
	}

	return nil
}

// AddID inserts id into the list unless present.
func (repo *edgeListRepository) AddID(ctx context.Context, listID, id primitive.ObjectID) (bool, error) {
	return repo.modify(ctx, listID, bson.M{"$addToSet": bson.M{"ids": id}}, "failed to add id to edge list")
}

// RemoveID removes id from the list.
func (repo *edgeListRepository) RemoveID(ctx context.Context, listID, id primitive.ObjectID) (bool, error) {
	return repo.modify(ctx, listID, bson.M{"$pull": bson.M{"ids": id}}, "failed to remove id from edge list")
}

func (repo *edgeListRepository) modify(ctx context.Context, listID primitive.ObjectID, update bson.M, op string) (bool, error) {
	result, err := repo.collection(model.EdgeListCollection).UpdateOne(repo.scope(ctx), bson.M{"_id": listID}, update)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, op)
	}
	if result.MatchedCount == 0 {
		return false, repository.ErrEdgeListNotFound
	}

	return result.ModifiedCount > 0, nil
}

// FindEmptyIDs returns the IDs of every edge list that holds no IDs.
func (repo *edgeListRepository) FindEmptyIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	filter := bson.M{"ids": bson.M{"$size": 0}}
	opts := options.Find().SetProjection(bson.M{"_id": 1}).SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := repo.collection(model.EdgeListCollection).Find(repo.scope(ctx), filter, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find empty edge lists")
	}

	var listMs []model.EdgeListModel
	if err := cursor.All(repo.scope(ctx), &listMs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode edge lists")
	}

	ids := make([]primitive.ObjectID, 0, len(listMs))
	for _, listM := range listMs {
		ids = append(ids, listM.ID)
	}

	return ids, nil
}
