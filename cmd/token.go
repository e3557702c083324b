package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errNoTokenRef = errors.New("token_ref is empty")

func newTokenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored bot token",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.init(cmd); err != nil {
				return err
			}
			if app.cfg.TokenRef == "" {
				return errNoTokenRef
			}
			return nil
		},
	}

	cmd.AddCommand(newTokenSetCmd(app), newTokenRemoveCmd(app))

	return cmd
}

func newTokenSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the bot token under token_ref",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("token value is empty")
			}
			token, err := normalizeToken(value)
			if err != nil {
				return err
			}
			if err := app.secretStore.Put(cmd.Context(), app.cfg.TokenRef, token); err != nil {
				return fmt.Errorf("store bot token: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored bot token at %s\n", app.cfg.TokenRef)
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Bot token")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newTokenRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored bot token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), app.cfg.TokenRef); err != nil {
				return fmt.Errorf("remove bot token: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed bot token at %s\n", app.cfg.TokenRef)
			return err
		},
	}
}
