// Package cli implements the azenv command surface: create, delete, cancel,
// env, and version.
//
// Commands share one resolution step (config plus positional arguments to an
// identity) and talk to the provider through the azure.Client interface so
// they can be exercised against a fake.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stackhaven/azenv/internal/azure"
	"github.com/stackhaven/azenv/internal/config"
	"github.com/stackhaven/azenv/internal/naming"
	"github.com/stackhaven/azenv/internal/settings"
)

var rootCmd = &cobra.Command{
	Use:   "azenv <command> <project_name> [environment] [location]",
	Short: "Provision and inspect per-environment Azure deployments",
	Long: `azenv manages one Azure resource-group deployment per
(project, environment, location) triple and materializes its outputs into a
shell-sourceable .<environment>.env settings file.`,
}

// newProvider builds the provider client for the loaded config.
// Tests replace it with a fake.
var newProvider = func(cfg *config.Config) (azure.Client, error) {
	return azure.NewClient(cfg.SubscriptionID)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	// Define persistent flags
	rootCmd.PersistentFlags().String("subscription", "", "Azure subscription ID")

	// Bind flags to viper
	viper.BindPFlag("subscription_id", rootCmd.PersistentFlags().Lookup("subscription"))

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveIdentity loads configuration and applies argument precedence.
// It runs before any remote call; failures here still print usage.
func resolveIdentity(cmd *cobra.Command, args []string) (naming.Identity, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return naming.Identity{}, nil, err
	}

	id, err := naming.Resolve(cfg, args)
	if err != nil {
		return naming.Identity{}, nil, err
	}

	// Arguments are valid from here on; runtime failures print no usage.
	cmd.SilenceUsage = true

	return id, cfg, nil
}

// materialize writes the settings file for the identity, then appends the
// secrets section. Registry admin credentials are the only secret kind
// fetched; other kinds (storage keys, connection strings) are not
// implemented.
func materialize(ctx context.Context, provider azure.Client, id naming.Identity, outputs []settings.Output) error {
	path := settings.FilePath(id.Environment)

	if err := settings.Write(path, id.Environment, outputs); err != nil {
		return err
	}

	registry, err := settings.RegistryName(path)
	if err != nil {
		return err
	}

	var secrets []settings.Secret
	if registry != "" {
		cred, err := provider.RegistryCredential(ctx, id, registry)
		if err != nil {
			return err
		}
		secrets = []settings.Secret{
			{Key: "registry_username", Value: cred.Username},
			{Key: "registry_password", Value: cred.Password},
		}
	}

	return settings.AppendSecrets(path, secrets)
}
