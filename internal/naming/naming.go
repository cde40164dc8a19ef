// Package naming derives the deterministic resource names used by every
// command from a (project, environment, location) identity.
//
// Identical identities always yield identical names; there is no hidden
// state and no remote lookup.
package naming

import (
	"errors"
	"fmt"

	"github.com/stackhaven/azenv/internal/config"
)

// ErrMissingProject is returned when no project name can be resolved from
// either the command line or the persisted defaults.
var ErrMissingProject = errors.New("missing required argument: project_name")

// Identity identifies one deployed environment of a project.
type Identity struct {
	Project     string
	Environment string
	Location    string
}

// Resolve builds an Identity from the loaded config and the positional
// arguments <project_name> [environment] [location]. Arguments take
// precedence over persisted defaults, which take precedence over the
// built-in defaults already applied by config.Load.
func Resolve(cfg *config.Config, args []string) (Identity, error) {
	id := Identity{
		Project:     cfg.ProjectName,
		Environment: cfg.Environment,
		Location:    cfg.Location,
	}

	if len(args) > 0 {
		id.Project = args[0]
	}
	if len(args) > 1 {
		id.Environment = args[1]
	}
	if len(args) > 2 {
		id.Location = args[2]
	}

	if id.Project == "" {
		return Identity{}, ErrMissingProject
	}

	return id, nil
}

// ResourceGroupName returns the resource group holding all resources of
// this project/environment pair.
func (id Identity) ResourceGroupName() string {
	return fmt.Sprintf("rg-%s-%s", id.Project, id.Environment)
}

// DeploymentName returns the name under which deployments for this
// identity are submitted and later shown or cancelled.
func (id Identity) DeploymentName() string {
	return fmt.Sprintf("deployment-%s-%s-%s", id.Project, id.Environment, id.Location)
}
