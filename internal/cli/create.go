package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stackhaven/azenv/internal/settings"
)

var createCmd = &cobra.Command{
	Use:   "create <project_name> [environment] [location]",
	Short: "Provision the resource group and run the deployment",
	Long: `Create the environment's resource group if it does not exist, then
submit the deployment and materialize its outputs into the settings file.

The deployment runs in Complete mode: resources in the group that the
template does not declare are removed. Do not add resources to a managed
group by hand.`,
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

		color.Cyan("Creating environment %q for project %q in %s...", id.Environment, id.Project, id.Location)
		color.Yellow("⚠ Complete mode: resources not declared in the template will be removed from %s", id.ResourceGroupName())

		if err := provider.EnsureResourceGroup(ctx, id); err != nil {
			color.Red("✗ Failed to create resource group: %v", err)
			return err
		}

		color.Cyan("→ Submitting deployment %s...", id.DeploymentName())
		outputs, err := provider.Deploy(ctx, id)
		if err != nil {
			color.Red("✗ Deployment failed: %v", err)
			return err
		}

		if err := materialize(ctx, provider, id, outputs); err != nil {
			color.Red("✗ Failed to write settings: %v", err)
			return err
		}

		color.Green("✓ Environment ready")
		color.Cyan("\nSettings written to %s", settings.FilePath(id.Environment))
		color.Cyan("Run 'source %s' to load them", settings.FilePath(id.Environment))

		return nil
	},
}
