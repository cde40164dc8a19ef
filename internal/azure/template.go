package azure

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/stackhaven/azenv/internal/naming"
)

// The ARM template every create deploys. Its parameters are exactly the
// identity triple; everything else the environment needs is declared inside.
//
//go:embed template.json
var templateJSON []byte

// deploymentTemplate decodes the embedded template into the loosely typed
// form the resources SDK submits.
func deploymentTemplate() (map[string]any, error) {
	var tmpl map[string]any
	if err := json.Unmarshal(templateJSON, &tmpl); err != nil {
		return nil, fmt.Errorf("failed to decode embedded deployment template: %w", err)
	}
	return tmpl, nil
}

// deploymentParameters builds the ARM parameter object for an identity,
// one {"value": ...} wrapper per template parameter.
func deploymentParameters(id naming.Identity) map[string]any {
	return map[string]any{
		"projectName": map[string]any{"value": id.Project},
		"environment": map[string]any{"value": id.Environment},
		"location":    map[string]any{"value": id.Location},
	}
}
