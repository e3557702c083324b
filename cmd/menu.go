package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/prefbot/internal/adapters/render/terminal"
	"github.com/bnema/prefbot/internal/application"
	"github.com/bnema/prefbot/internal/domain"
	"github.com/spf13/cobra"
)

const (
	previewMain   = "main"
	previewPicker = "picker"
	previewPack   = "pack"
	previewPanel  = "panel"
)

func newMenuCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Work with the rendered menus",
	}

	cmd.AddCommand(newMenuPreviewCmd(app))

	return cmd
}

func newMenuPreviewCmd(app *app) *cobra.Command {
	var showIDs bool

	cmd := &cobra.Command{
		Use:       "preview [main|picker|pack <key>|panel]",
		Short:     "Render a menu in the terminal",
		Args:      cobra.RangeArgs(0, 2),
		ValidArgs: []string{previewMain, previewPicker, previewPack, previewPanel},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			name := previewMain
			if len(args) > 0 {
				name = args[0]
			}

			payload, err := previewPayload(application.NewRenderer(catalog), catalog, name, args[min(1, len(args)):])
			if err != nil {
				return err
			}

			output, err := terminal.Render(payload, terminal.RenderOptions{Title: name, ShowIDs: showIDs})
			if err != nil {
				return fmt.Errorf("render preview: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "Print button custom ids under each row")

	return cmd
}

func previewPayload(renderer *application.Renderer, catalog *domain.Catalog, name string, rest []string) (domain.Payload, error) {
	switch name {
	case previewMain:
		return renderer.MainMenu(), nil
	case previewPicker:
		return renderer.IndividualPicker(), nil
	case previewPanel:
		return renderer.Panel(), nil
	case previewPack:
		if len(rest) != 1 {
			return domain.Payload{}, errors.New("preview pack needs exactly one pack key")
		}
		pack, err := catalog.Pack(domain.PackKey(rest[0]))
		if err != nil {
			return domain.Payload{}, fmt.Errorf("preview pack %q: %w", rest[0], err)
		}
		return renderer.PackDetail(pack), nil
	default:
		return domain.Payload{}, fmt.Errorf("unknown preview %q (want main, picker, pack or panel)", name)
	}
}
