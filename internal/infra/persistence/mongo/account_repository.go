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
)

// accountRepository implements the domain.AccountRepository interface using MongoDB.
type accountRepository struct {
	base
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepository{base: newBase(db, nil)}
}

// FindByID retrieves a single account by its ID.
func (repo *accountRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"_id": id}, "failed to find account by id")
}

// FindByPhoneNumber retrieves a single account by its phone number.
func (repo *accountRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"phoneNumber": phoneNumber}, "failed to find account by phone number")
}

func (repo *accountRepository) findOne(ctx context.Context, filter bson.M, op string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.collection(model.AccountCollection).FindOne(repo.scope(ctx), filter).Decode(&accountM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return model.ToAccountDomain(&accountM), nil
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}

	if _, err := repo.collection(model.AccountCollection).InsertOne(repo.scope(ctx), model.FromAccountDomain(account)); err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicatePhoneNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return nil
}

// Update replaces the stored account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	result, err := repo.collection(model.AccountCollection).
		ReplaceOne(repo.scope(ctx), bson.M{"_id": account.ID}, model.FromAccountDomain(account))
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicatePhoneNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	if result.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}
