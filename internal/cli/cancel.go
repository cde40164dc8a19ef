package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <project_name> [environment] [location]",
	Short: "Cancel the in-flight deployment",
	Long: `Request cancellation of the environment's running deployment.

Cancellation is a best-effort remote signal: the provider rejects it when
no deployment of that name exists or it has already completed.`,
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

		color.Cyan("Cancelling deployment %s...", id.DeploymentName())

		if err := provider.Cancel(cmd.Context(), id); err != nil {
			color.Red("✗ Failed to cancel deployment: %v", err)
			return err
		}

		color.Green("✓ Cancellation requested for %s", id.DeploymentName())

		return nil
	},
}
