package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stackhaven/azenv/internal/azure"
	"github.com/stackhaven/azenv/internal/settings"
)

var envCmd = &cobra.Command{
	Use:   "env <project_name> [environment] [location]",
	Short: "Refresh the settings file from the existing deployment",
	Long: `Fetch the outputs of the environment's deployment without
re-deploying and rewrite the settings file from them.

Fails if no deployment exists for the resolved identity; in that case no
settings file is written or truncated.`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, cfg, err := resolveIdentity(cmd, args)
		if err != nil {
			return err
		}

		provider, err := newProvider(cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		color.Cyan("Fetching outputs of deployment %s...", id.DeploymentName())
		outputs, err := provider.Show(ctx, id)
		if err != nil {
			if errors.Is(err, azure.ErrNotFound) {
				color.Red("✗ No deployment named %s exists; run 'azenv create' first", id.DeploymentName())
			} else {
				color.Red("✗ Failed to fetch deployment outputs: %v", err)
			}
			return err
		}

		if err := materialize(ctx, provider, id, outputs); err != nil {
			color.Red("✗ Failed to write settings: %v", err)
			return err
		}

		color.Green("✓ Settings written to %s", settings.FilePath(id.Environment))

		return nil
	},
}
