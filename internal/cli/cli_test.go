package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/stackhaven/azenv/internal/azure"
	"github.com/stackhaven/azenv/internal/config"
	"github.com/stackhaven/azenv/internal/naming"
	"github.com/stackhaven/azenv/internal/settings"
)

// fakeProvider implements azure.Client in memory and records what the
// commands asked of it.
type fakeProvider struct {
	outputs []settings.Output
	cred    azure.Credential

	ensureErr error
	deployErr error
	showErr   error
	cancelErr error
	deleteErr error
	credErr   error

	ensured   bool
	deployed  bool
	shown     bool
	cancelled bool
	deleted   bool
	credCalls int
}

var _ azure.Client = (*fakeProvider)(nil)

func (f *fakeProvider) EnsureResourceGroup(ctx context.Context, id naming.Identity) error {
	f.ensured = true
	return f.ensureErr
}

func (f *fakeProvider) Deploy(ctx context.Context, id naming.Identity) ([]settings.Output, error) {
	f.deployed = true
	return f.outputs, f.deployErr
}

func (f *fakeProvider) Show(ctx context.Context, id naming.Identity) ([]settings.Output, error) {
	f.shown = true
	return f.outputs, f.showErr
}

func (f *fakeProvider) Cancel(ctx context.Context, id naming.Identity) error {
	f.cancelled = true
	return f.cancelErr
}

func (f *fakeProvider) DeleteResourceGroup(ctx context.Context, id naming.Identity) error {
	f.deleted = true
	return f.deleteErr
}

func (f *fakeProvider) RegistryCredential(ctx context.Context, id naming.Identity, registryName string) (azure.Credential, error) {
	f.credCalls++
	return f.cred, f.credErr
}

// initConfig moves the test into a fresh directory and re-initializes the
// config layer there, so no real .azenv defaults file leaks in.
func initConfig(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	resetConfig(t)
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// resetConfig re-initializes viper in the current directory, picking up a
// .azenv defaults file when the test has written one.
func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	require.NoError(t, config.Init())
}

// withFakeProvider routes all commands to the fake for one test.
func withFakeProvider(t *testing.T, f *fakeProvider) {
	t.Helper()
	orig := newProvider
	newProvider = func(cfg *config.Config) (azure.Client, error) { return f, nil }
	t.Cleanup(func() { newProvider = orig })
}

// runCommand executes the root command with the given arguments, capturing
// cobra's own output.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
