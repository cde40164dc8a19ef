package azure

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/stackhaven/azenv/internal/settings"
)

// deploymentOutputs pulls the outputs object out of a deployment response.
// A deployment without outputs yields an empty set, not an error.
func deploymentOutputs(deployment armresources.DeploymentExtended) ([]settings.Output, error) {
	if deployment.Properties == nil {
		return nil, nil
	}
	return extractOutputs(deployment.Properties.Outputs)
}

// extractOutputs converts the raw outputs object (key -> {type, value}) into
// ordered Output entries. The provider returns outputs as a JSON object, so
// no positional order survives decoding; entries are sorted by canonical key
// to keep the settings file deterministic. Any entry that does not fit the
// scalar/array model aborts the whole extraction.
func extractOutputs(raw any) ([]settings.Output, error) {
	if raw == nil {
		return nil, nil
	}

	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: outputs are not an object", settings.ErrMalformedOutput)
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return settings.Snake(keys[i]) < settings.Snake(keys[j])
	})

	outputs := make([]settings.Output, 0, len(keys))
	for _, key := range keys {
		out, err := extractOutput(key, entries[key])
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}

	return outputs, nil
}

func extractOutput(key string, raw any) (settings.Output, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return settings.Output{}, fmt.Errorf("%w: output %q is not an object", settings.ErrMalformedOutput, key)
	}

	typ, _ := entry["type"].(string)
	value := entry["value"]

	switch typ {
	case "Array":
		list, ok := value.([]any)
		if !ok {
			return settings.Output{}, fmt.Errorf("%w: output %q declares Array but carries no list", settings.ErrMalformedOutput, key)
		}
		values := make([]string, len(list))
		for i, elem := range list {
			s, ok := elem.(string)
			if !ok {
				return settings.Output{}, fmt.Errorf("%w: output %q element %d is not a string", settings.ErrMalformedOutput, key, i)
			}
			values[i] = s
		}
		return settings.Output{Key: key, Type: settings.Array, Values: values}, nil

	case "String":
		s, ok := value.(string)
		if !ok {
			return settings.Output{}, fmt.Errorf("%w: output %q declares String but carries no string", settings.ErrMalformedOutput, key)
		}
		return settings.Output{Key: key, Type: settings.Scalar, Value: s}, nil

	case "Int":
		n, ok := value.(float64)
		if !ok {
			return settings.Output{}, fmt.Errorf("%w: output %q declares Int but carries no number", settings.ErrMalformedOutput, key)
		}
		return settings.Output{Key: key, Type: settings.Scalar, Value: strconv.FormatFloat(n, 'f', -1, 64)}, nil

	case "Bool":
		b, ok := value.(bool)
		if !ok {
			return settings.Output{}, fmt.Errorf("%w: output %q declares Bool but carries no bool", settings.ErrMalformedOutput, key)
		}
		return settings.Output{Key: key, Type: settings.Scalar, Value: strconv.FormatBool(b)}, nil

	default:
		return settings.Output{}, fmt.Errorf("%w: output %q has unsupported type %q", settings.ErrMalformedOutput, key, typ)
	}
}
