package cli

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackhaven/azenv/internal/azure"
	"github.com/stackhaven/azenv/internal/settings"
)

func TestEnvCommandWritesSettings(t *testing.T) {
	initConfig(t)

	fake := &fakeProvider{
		outputs: []settings.Output{
			{Key: "registryName", Type: settings.Scalar, Value: "acrdemodev"},
			{Key: "subnetIds", Type: settings.Array, Values: []string{"a", "b"}},
		},
		cred: azure.Credential{Username: "admin", Password: "hunter2"},
	}
	withFakeProvider(t, fake)

	require.NoError(t, runCommand(t, "env", "demo", "dev"))

	assert.True(t, fake.shown)
	assert.False(t, fake.deployed, "env must not re-deploy")
	assert.Equal(t, 1, fake.credCalls)

	data, err := os.ReadFile(".dev.env")
	require.NoError(t, err)

	want := "# Settings for environment 'dev'. Generated by azenv.\n" +
		"# Do not edit. This file is rewritten on every create or env run.\n" +
		"registry_name=acrdemodev\n" +
		"subnet_ids=(a b)\n" +
		"\n### Secrets ###\n" +
		"registry_username=admin\n" +
		"registry_password=hunter2\n"
	assert.Equal(t, want, string(data))
}

func TestEnvCommandNoDeploymentWritesNothing(t *testing.T) {
	initConfig(t)

	fake := &fakeProvider{
		showErr: fmt.Errorf("%w: show deployment: no deployment named deployment-demo-dev-eastus2", azure.ErrNotFound),
	}
	withFakeProvider(t, fake)

	err := runCommand(t, "env", "demo", "dev")
	require.ErrorIs(t, err, azure.ErrNotFound)

	_, statErr := os.Stat(".dev.env")
	assert.True(t, os.IsNotExist(statErr), "no settings file may be written when the deployment does not exist")
	assert.Zero(t, fake.credCalls)
}

func TestEnvCommandNoRegistrySkipsCredentialFetch(t *testing.T) {
	initConfig(t)

	fake := &fakeProvider{
		outputs: []settings.Output{
			{Key: "storageAccountName", Type: settings.Scalar, Value: "stdemoprod"},
		},
	}
	withFakeProvider(t, fake)

	require.NoError(t, runCommand(t, "env", "demo"))

	assert.Zero(t, fake.credCalls)

	// Defaults file absent, so environment falls back to prod.
	data, err := os.ReadFile(".prod.env")
	require.NoError(t, err)

	// The delimiter is written even though the secrets section is empty.
	assert.Contains(t, string(data), "\n### Secrets ###\n")
	assert.NotContains(t, string(data), "registry_username")
}
