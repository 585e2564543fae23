package main

import (
	"roster/internal/errors"
	"roster/internal/infra/persistence/mongo"

	"github.com/spf13/cobra"
)

func newEnsureIndexesCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the MongoDB indexes the service relies on",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, open, func(env *environment) error {
				if env.db == nil {
					return errors.New("ensure-indexes requires a MongoDB store")
				}
				if err := mongo.EnsureIndexes(cmd.Context(), env.db); err != nil {
					return err
				}
				env.logger.InfoContext(cmd.Context(), "MongoDB indexes ensured")

				return nil
			})
		},
	}
}
