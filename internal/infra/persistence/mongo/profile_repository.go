package mongo

import (
	"context"
	"regexp"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var searchableProfileFields = []string{"phoneNumber", "name", "email", "address"}

// profileRepository implements the domain.ProfileRepository interface using MongoDB.
type profileRepository struct {
	base
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{base: newBase(db, nil)}
}

// FindByID retrieves a single profile by its ID.
func (repo *profileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.collection(model.ProfileCollection).FindOne(repo.scope(ctx), bson.M{"_id": id}).Decode(&profileM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile by id")
	}

	return model.ToProfileDomain(&profileM), nil
}

// FindByIDs retrieves every existing profile among ids.
func (repo *profileRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	return repo.Search(ctx, repository.ProfileFilter{IDs: ids})
}

// FindByPhoneNumberAndRole retrieves the profile with the given phone number and role.
func (repo *profileRepository) FindByPhoneNumberAndRole(ctx context.Context, phoneNumber string, role entity.Role) (*entity.Profile, error) {
	var profileM model.ProfileModel
	filter := bson.M{"phoneNumber": phoneNumber, "role": role.String()}
	if err := repo.collection(model.ProfileCollection).FindOne(repo.scope(ctx), filter).Decode(&profileM); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile by phone number")
	}

	return model.ToProfileDomain(&profileM), nil
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}

	if _, err := repo.collection(model.ProfileCollection).InsertOne(repo.scope(ctx), model.FromProfileDomain(profile)); err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicatePhoneNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	return nil
}

// Update replaces the stored profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result, err := repo.collection(model.ProfileCollection).
		ReplaceOne(repo.scope(ctx), bson.M{"_id": profile.ID}, model.FromProfileDomain(profile))
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicatePhoneNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Search returns the profiles matching filter ordered by ID ascending.
func (repo *profileRepository) Search(ctx context.Context, filter repository.ProfileFilter) ([]*entity.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := repo.collection(model.ProfileCollection).Find(repo.scope(ctx), buildProfileQuery(filter), opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search profiles")
	}

	var profileMs []model.ProfileModel
	if err := cursor.All(repo.scope(ctx), &profileMs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileMs))
	for i := range profileMs {
		profiles = append(profiles, model.ToProfileDomain(&profileMs[i]))
	}

	return profiles, nil
}

func buildProfileQuery(filter repository.ProfileFilter) bson.M {
	query := bson.M{}
	if filter.IDs != nil {
		query["_id"] = bson.M{"$in": filter.IDs}
	}
	if filter.SuperListIDs != nil {
		query["listSuperProfile"] = bson.M{"$in": filter.SuperListIDs}
	}
	if filter.Role != "" {
		query["role"] = filter.Role.String()
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		or := make(bson.A, 0, len(searchableProfileFields))
		for _, field := range searchableProfileFields {
			or = append(or, bson.M{field: pattern})
		}
		query["$or"] = or
	}

	return query
}
