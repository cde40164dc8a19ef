package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <project_name> [environment] [location]",
	Short: "Delete the environment's resource group",
	Long: `Delete the whole resource group and everything in it.

The deletion is auto-confirmed; there is no interactive prompt. Fails if
the resource group does not exist.`,
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

		color.Cyan("Deleting resource group %s...", id.ResourceGroupName())

		if err := provider.DeleteResourceGroup(cmd.Context(), id); err != nil {
			color.Red("✗ Failed to delete resource group: %v", err)
			return err
		}

		color.Green("✓ Resource group %s deleted", id.ResourceGroupName())

		return nil
	},
}
