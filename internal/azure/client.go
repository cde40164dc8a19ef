// Package azure wraps the Azure resource management SDK behind the small
// provider interface the CLI consumes.
//
// The interface mirrors the remote capabilities the tool needs and nothing
// more, so tests can run the commands against a fake. Every call blocks
// until the provider responds; there is no retry and no local timeout
// beyond the transport's own.
package azure

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerregistry/armcontainerregistry"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/stackhaven/azenv/internal/naming"
	"github.com/stackhaven/azenv/internal/settings"
)

// Tag keys stamped on every resource group this tool creates, so the groups
// it manages are identifiable from the portal and from other tooling.
const (
	TagProject     = "project"
	TagEnvironment = "environment"
	TagManagedBy   = "managed-by"

	managedByValue = "azenv"
)

// Credential is one registry admin credential pair.
type Credential struct {
	Username string
	Password string
}

// Client is the provider capability consumed by the commands.
type Client interface {
	// EnsureResourceGroup creates the identity's resource group if absent,
	// tagged with the project/environment/managed-by markers.
	EnsureResourceGroup(ctx context.Context, id naming.Identity) error

	// Deploy submits the embedded template as a Complete-mode deployment,
	// waits for the result, and returns the extracted outputs. Complete
	// mode removes resources not declared in the template from the group.
	Deploy(ctx context.Context, id naming.Identity) ([]settings.Output, error)

	// Show fetches the outputs of an existing deployment without
	// re-deploying. Returns ErrNotFound when no such deployment exists.
	Show(ctx context.Context, id naming.Identity) ([]settings.Output, error)

	// Cancel requests cancellation of the in-flight deployment. Not-found
	// and already-completed errors pass through from the provider.
	Cancel(ctx context.Context, id naming.Identity) error

	// DeleteResourceGroup deletes the whole resource group and waits for
	// completion. No confirmation is asked for; the CLI layer warns.
	DeleteResourceGroup(ctx context.Context, id naming.Identity) error

	// RegistryCredential fetches the admin username/password of a container
	// registry in the identity's resource group. Registry credentials are
	// the only secret kind implemented; other kinds (storage keys,
	// connection strings) are a known gap.
	RegistryCredential(ctx context.Context, id naming.Identity, registryName string) (Credential, error)
}

// armClient is the production Client backed by the resource manager SDK.
type armClient struct {
	groups      *armresources.ResourceGroupsClient
	deployments *armresources.DeploymentsClient
	registries  *armcontainerregistry.RegistriesClient
}

var _ Client = (*armClient)(nil)

// NewClient builds a Client for one subscription using the default Azure
// credential chain (CLI login, managed identity, environment).
func NewClient(subscriptionID string) (Client, error) {
	if subscriptionID == "" {
		return nil, errors.New("subscription_id is required (set AZENV_SUBSCRIPTION_ID or add subscription_id to the .azenv defaults file)")
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateClient, err)
	}

	groups, err := armresources.NewResourceGroupsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateClient, err)
	}

	deployments, err := armresources.NewDeploymentsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateClient, err)
	}

	registries, err := armcontainerregistry.NewRegistriesClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateClient, err)
	}

	return &armClient{
		groups:      groups,
		deployments: deployments,
		registries:  registries,
	}, nil
}

func (c *armClient) EnsureResourceGroup(ctx context.Context, id naming.Identity) error {
	group := armresources.ResourceGroup{
		Location: to.Ptr(id.Location),
		Tags: map[string]*string{
			TagProject:     to.Ptr(id.Project),
			TagEnvironment: to.Ptr(id.Environment),
			TagManagedBy:   to.Ptr(managedByValue),
		},
	}

	_, err := c.groups.CreateOrUpdate(ctx, id.ResourceGroupName(), group, nil)
	if err != nil {
		return wrapRemoteErr("create resource group", err)
	}

	return nil
}

func (c *armClient) Deploy(ctx context.Context, id naming.Identity) ([]settings.Output, error) {
	tmpl, err := deploymentTemplate()
	if err != nil {
		return nil, err
	}

	deployment := armresources.Deployment{
		Properties: &armresources.DeploymentProperties{
			Template:   tmpl,
			Parameters: deploymentParameters(id),
			Mode:       to.Ptr(armresources.DeploymentModeComplete),
		},
	}

	poller, err := c.deployments.BeginCreateOrUpdate(ctx, id.ResourceGroupName(), id.DeploymentName(), deployment, nil)
	if err != nil {
		return nil, wrapRemoteErr("create deployment", err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeployment, err)
	}

	return deploymentOutputs(resp.DeploymentExtended)
}

func (c *armClient) Show(ctx context.Context, id naming.Identity) ([]settings.Output, error) {
	resp, err := c.deployments.Get(ctx, id.ResourceGroupName(), id.DeploymentName(), nil)
	if err != nil {
		return nil, wrapRemoteErr("show deployment", err)
	}

	return deploymentOutputs(resp.DeploymentExtended)
}

func (c *armClient) Cancel(ctx context.Context, id naming.Identity) error {
	_, err := c.deployments.Cancel(ctx, id.ResourceGroupName(), id.DeploymentName(), nil)
	if err != nil {
		return wrapRemoteErr("cancel deployment", err)
	}

	return nil
}

func (c *armClient) DeleteResourceGroup(ctx context.Context, id naming.Identity) error {
	poller, err := c.groups.BeginDelete(ctx, id.ResourceGroupName(), nil)
	if err != nil {
		return wrapRemoteErr("delete resource group", err)
	}

	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return wrapRemoteErr("delete resource group", err)
	}

	return nil
}

func (c *armClient) RegistryCredential(ctx context.Context, id naming.Identity, registryName string) (Credential, error) {
	resp, err := c.registries.ListCredentials(ctx, id.ResourceGroupName(), registryName, nil)
	if err != nil {
		return Credential{}, wrapRemoteErr("list registry credentials", err)
	}

	if resp.Username == nil || len(resp.Passwords) == 0 || resp.Passwords[0].Value == nil {
		return Credential{}, fmt.Errorf("%w: registry %q returned no admin credentials", settings.ErrMalformedOutput, registryName)
	}

	return Credential{
		Username: *resp.Username,
		Password: *resp.Passwords[0].Value,
	}, nil
}
