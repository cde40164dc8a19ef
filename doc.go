// Package azenv provides orchestration for per-environment Azure deployments.
//
// azenv provisions, tears down, cancels, and introspects a resource-group
// deployment for a (project, environment, location) triple, then materializes
// the deployment outputs and registry credentials into a shell-sourceable
// settings file.
//
// # Overview
//
// The CLI provides:
//   - azenv create: resource group + ARM deployment in Complete mode
//   - azenv delete: tear down the whole resource group
//   - azenv cancel: cancel an in-flight deployment
//   - azenv env: refresh the settings file from an existing deployment
//
// # Installation
//
//	go install github.com/stackhaven/azenv/cmd/azenv@latest
//
// # Quick Start
//
//	azenv create myproject dev eastus2
//	source .dev.env
//	azenv env myproject dev
//
// # Naming convention
//
// Every invocation resolves the same deterministic names from its identity:
//   - resource group: rg-<project>-<environment>
//   - deployment:     deployment-<project>-<environment>-<location>
//   - settings file:  .<environment>.env
//
// # Configuration
//
// Defaults may be persisted in a .azenv file (key=value) in the working
// directory or $HOME/.azenv/, and overridden by AZENV_* environment
// variables and command-line arguments, in that order of precedence.
package azenv
