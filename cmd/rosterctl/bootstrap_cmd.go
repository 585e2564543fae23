package main

import (
	"os"

	"roster/internal/errors"
	"roster/internal/usecase"

	"github.com/spf13/cobra"
)

const adminPasswordEnv = "ROSTER_ADMIN_PASSWORD"

func newBootstrapAdminCmd(open openFunc) *cobra.Command {
	var (
		phoneNumber string
		name        string
		password    string
	)

	cmd := &cobra.Command{
		Use:   "bootstrap-admin",
		Short: "Create an admin account/profile pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(adminPasswordEnv)
			}
			if password == "" {
				return errors.Errorf("--password or %s is required", adminPasswordEnv)
			}

			return withEnvironment(cmd, open, func(env *environment) error {
				view, err := env.hierarchy.BootstrapAdmin(cmd.Context(), usecase.CreateMemberInput{
					PhoneNumber: phoneNumber,
					Password:    password,
					Name:        name,
				})
				if err != nil {
					return err
				}

				return writeJSON(cmd.OutOrStdout(), view)
			})
		},
	}

	cmd.Flags().StringVar(&phoneNumber, "phone", "", "Admin phone number (required)")
	cmd.Flags().StringVar(&name, "name", "Administrator", "Admin display name")
	cmd.Flags().StringVar(&password, "password", "", "Admin password, defaults to $"+adminPasswordEnv)
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}
