package mongo

import (
	"context"
	"log/slog"

	"roster/config"
	"roster/internal/domain/repository"
	"roster/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// mongoTransactionManager implements the domain's TransactionManager interface using client sessions.
type mongoTransactionManager struct {
	db           *mongo.Database
	transactions bool
	logger       *slog.Logger
}

// mongoRepositoryFactory implements the domain's RepositoryFactory interface.
// Repositories it creates attach its session to every call, so they join the running transaction.
type mongoRepositoryFactory struct {
	db      *mongo.Database
	session mongo.Session
}

// AccountRepo creates an account repository bound to the transaction.
func (f *mongoRepositoryFactory) AccountRepo() repository.AccountRepository {
	return &accountRepository{base: newBase(f.db, f.session)}
}

// ProfileRepo creates a profile repository bound to the transaction.
func (f *mongoRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{base: newBase(f.db, f.session)}
}

// EdgeListRepo creates an edge list repository bound to the transaction.
func (f *mongoRepositoryFactory) EdgeListRepo() repository.EdgeListRepository {
	return &edgeListRepository{base: newBase(f.db, f.session)}
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database, cfg *config.Config, logger *slog.Logger) repository.TransactionManager {
	return &mongoTransactionManager{
		db:           db,
		transactions: cfg.Mongo != nil && cfg.Mongo.Transactions,
		logger:       logger,
	}
}

// Execute runs fn inside a multi-document transaction. The driver retries fn on transient
// transaction errors, so fn must not keep state across attempts.
// With transactions disabled fn runs directly and partial writes are possible.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if !tm.transactions {
		return fn(&mongoRepositoryFactory{db: tm.db})
	}

	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	factory := &mongoRepositoryFactory{db: tm.db, session: session}
	_, err = session.WithTransaction(ctx, func(_ mongo.SessionContext) (any, error) {
		return nil, fn(factory)
	})
	if err != nil {
		tm.logger.DebugContext(ctx, "transaction aborted", slog.Any("error", err))

		return err
	}

	return nil
}
