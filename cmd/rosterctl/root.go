package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"roster/config"
	"roster/internal/errors"
	"roster/internal/infra/auth"
	logs "roster/internal/infra/log"
	"roster/internal/infra/persistence/mongo"
	"roster/internal/usecase"
	"roster/internal/usecase/impl"

	"github.com/spf13/cobra"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// environment is what a command needs to run. db is nil when the store is not MongoDB.
type environment struct {
	logger    *slog.Logger
	db        *mongodriver.Database
	hierarchy usecase.HierarchyUsecase
	close     func(context.Context) error
}

type openFunc func(ctx context.Context) (*environment, error)

func newRootCmd(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rosterctl",
		Short:        "Operator tools for the roster service",
		SilenceUsage: true,
	}
	cmd.AddCommand(newBootstrapAdminCmd(open))
	cmd.AddCommand(newEnsureIndexesCmd(open))

	return cmd
}

// openEnvironment connects to the configured MongoDB and builds the usecases on top of it.
func openEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(cfg.Mongo)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Mongo.Database)

	hierarchy := impl.NewHierarchyService(impl.HierarchyServiceParams{
		TxManager:    mongo.NewTransactionManager(db, cfg, logger),
		AccountRepo:  mongo.NewAccountRepository(db),
		ProfileRepo:  mongo.NewProfileRepository(db),
		EdgeListRepo: mongo.NewEdgeListRepository(db),
		Hasher:       auth.NewBcryptHasher(cfg),
		Config:       cfg,
		Logger:       logger,
	})

	return &environment{
		logger:    logger,
		db:        db,
		hierarchy: hierarchy,
		close:     client.Disconnect,
	}, nil
}

// withEnvironment opens the environment for the duration of run.
func withEnvironment(cmd *cobra.Command, open openFunc, run func(env *environment) error) (err error) {
	env, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := env.close(context.WithoutCancel(cmd.Context())); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return run(env)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
