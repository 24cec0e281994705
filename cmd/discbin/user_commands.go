package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"discbin/internal/auth"
	"discbin/internal/config"
	"discbin/internal/store"
)

func newUserCommand(ctx *commandContext) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	userCmd.AddCommand(newUserAddCommand(ctx))

	return userCmd
}

// newUserAddCommand seeds accounts directly in the store. The API only
// registers shoppers, so the first admin has to come from here.
func newUserAddCommand(ctx *commandContext) *cobra.Command {
	var name string
	var surname1 string
	var surname2 string
	var password string
	var role string

	cmd := &cobra.Command{
		Use:   "add USERNAME",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, st *store.Store) error {
				if len(password) < auth.MinPasswordLength {
					return fmt.Errorf("password must be at least %d characters", auth.MinPasswordLength)
				}
				hash, err := auth.HashPassword(password)
				if err != nil {
					return err
				}
				id, err := st.CreateUser(cmd.Context(), store.User{
					Name:         name,
					Surname1:     surname1,
					Surname2:     surname2,
					Username:     args[0],
					PasswordHash: hash,
					Role:         store.Role(role),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s account %d: %s\n", role, id, args[0])
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Given name")
	cmd.Flags().StringVar(&surname1, "surname1", "", "First surname")
	cmd.Flags().StringVar(&surname2, "surname2", "", "Second surname (optional)")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&role, "role", string(store.RoleUser), "Account role (admin or user)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("surname1")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
