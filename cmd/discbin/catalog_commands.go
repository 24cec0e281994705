package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"discbin/internal/config"
	"discbin/internal/money"
	"discbin/internal/store"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and edit the CD catalog",
	}

	catalogCmd.AddCommand(newCatalogArtistsCommand(ctx))
	catalogCmd.AddCommand(newCatalogCDsCommand(ctx))
	catalogCmd.AddCommand(newCatalogAddArtistCommand(ctx))
	catalogCmd.AddCommand(newCatalogAddCDCommand(ctx))

	return catalogCmd
}

func newCatalogArtistsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "artists",
		Short: "List catalog artists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, st *store.Store) error {
				artists, err := st.ListArtists(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(artists))
				for _, artist := range artists {
					rows = append(rows, []string{strconv.FormatInt(artist.ID, 10), artist.Name})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Name"}, rows, 1))
				return nil
			})
		},
	}
}

func newCatalogCDsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cds",
		Short: "List catalog CDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, st *store.Store) error {
				cds, err := st.ListCDs(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(cds))
				for _, cd := range cds {
					rows = append(rows, []string{
						strconv.FormatInt(cd.ID, 10),
						cd.Title,
						cd.ArtistName,
						cd.Price.String(),
						strconv.Itoa(cd.Stock),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title", "Artist", "Price", "Stock"}, rows, 1, 4, 5))
				return nil
			})
		},
	}
}

func newCatalogAddArtistCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add-artist NAME",
		Short: "Add an artist to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, st *store.Store) error {
				artist, err := st.CreateArtist(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added artist %d: %s\n", artist.ID, artist.Name)
				return nil
			})
		},
	}
}

func newCatalogAddCDCommand(ctx *commandContext) *cobra.Command {
	var artistName string
	var price string
	var stock int

	cmd := &cobra.Command{
		Use:   "add-cd TITLE",
		Short: "Add a CD to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, st *store.Store) error {
				amount, err := money.ParseAmount(price)
				if err != nil {
					return err
				}
				artist, err := st.ArtistByName(cmd.Context(), artistName)
				if err != nil {
					return err
				}
				cd, err := st.CreateCD(cmd.Context(), args[0], artist.ID, amount, stock)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added CD %d: %s by %s (%s, %d in stock)\n",
					cd.ID, cd.Title, cd.ArtistName, cd.Price, cd.Stock)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&artistName, "artist", "", "Artist name (must already exist)")
	cmd.Flags().StringVar(&price, "price", "", "Price as a decimal amount, e.g. 12.99")
	cmd.Flags().IntVar(&stock, "stock", 0, "Units in stock")
	_ = cmd.MarkFlagRequired("artist")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}
