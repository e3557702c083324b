package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the preference catalog",
	}

	cmd.AddCommand(newCatalogCheckCmd(app))

	return cmd
}

func newCatalogCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load and validate the catalog, then print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			return writeCatalogSummary(cmd.OutOrStdout(), app.cfg.CatalogPath, catalog)
		},
	}
}

func writeCatalogSummary(w io.Writer, path string, catalog *domain.Catalog) error {
	var b strings.Builder

	packs := catalog.Packs()
	fmt.Fprintf(&b, "catalog: %s\n", path)
	fmt.Fprintf(&b, "packs: %d\n", len(packs))
	for _, pack := range packs {
		fmt.Fprintf(&b, "  %s  %s  (%d roles)\n", pack.Key, pack.Name, len(pack.Roles))
	}

	individuals := catalog.Individuals()
	fmt.Fprintf(&b, "individuals: %d\n", len(individuals))
	for _, option := range individuals {
		fmt.Fprintf(&b, "  %d  %s  -> %s\n", option.Index, option.Label, option.Role)
	}

	fmt.Fprintf(&b, "managed roles: %d\n", len(catalog.ManagedRoleIDs()))

	_, err := io.WriteString(w, b.String())
	return err
}
