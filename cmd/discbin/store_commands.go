package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"discbin/internal/config"
	"discbin/internal/store"
)

func newStoreCommand(ctx *commandContext) *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Database utilities",
	}

	storeCmd.AddCommand(newStoreHealthCommand(ctx))

	return storeCmd
}

func newStoreHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check catalog database health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, st *store.Store) error {
				health, err := st.CheckHealth(cmd.Context())
				if err != nil {
					return err
				}
				rows := [][]string{
					{"Database", health.DBPath},
					{"Reachable", yesNo(health.Reachable)},
					{"Integrity", yesNo(health.IntegrityCheck)},
					{"Artists", strconv.Itoa(health.Artists)},
					{"CDs", strconv.Itoa(health.CDs)},
					{"Users", strconv.Itoa(health.Users)},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Check", "Value"}, rows))
				return nil
			})
		},
	}
}
