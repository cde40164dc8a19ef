package settings

import (
	"fmt"
	"os"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/subosito/gotenv"
)

// SecretsDelimiter separates the generated settings section from the
// appended secrets section. It is written on every run, even when there are
// no secrets to append.
const SecretsDelimiter = "### Secrets ###"

// FilePath returns the settings file name for an environment.
func FilePath(environment string) string {
	return "." + environment + ".env"
}

// Write materializes the output entries into the settings file at path,
// truncating any prior content. The whole body is rendered in memory first:
// a malformed entry aborts before a single byte reaches the file, so a
// partially written settings section cannot exist.
func Write(path, environment string, outputs []Output) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Settings for environment '%s'. Generated by azenv.\n", environment)
	b.WriteString("# Do not edit. This file is rewritten on every create or env run.\n")

	for _, out := range outputs {
		line, err := formatOutput(out)
		if err != nil {
			return err
		}
		b.WriteString(line)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	return nil
}

// formatOutput renders one assignment line. Scalars become key=value and
// arrays become key=(v1 v2 ...), both shell-quoted so the file can be
// sourced with special characters intact.
func formatOutput(out Output) (string, error) {
	if out.Key == "" {
		return "", fmt.Errorf("%w: entry with empty key", ErrMalformedOutput)
	}

	key := Snake(out.Key)

	switch out.Type {
	case Array:
		quoted := make([]string, len(out.Values))
		for i, v := range out.Values {
			quoted[i] = shellescape.Quote(v)
		}
		return fmt.Sprintf("%s=(%s)\n", key, strings.Join(quoted, " ")), nil
	case Scalar:
		return fmt.Sprintf("%s=%s\n", key, shellescape.Quote(out.Value)), nil
	default:
		return "", fmt.Errorf("%w: unknown type for key %q", ErrMalformedOutput, out.Key)
	}
}

// AppendSecrets appends the secrets section to an already materialized
// settings file. The delimiter is written unconditionally; assignment lines
// follow only when secrets were actually fetched.
func AppendSecrets(path string, secrets []Secret) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open settings file %s: %w", path, err)
	}

	var b strings.Builder
	b.WriteString("\n" + SecretsDelimiter + "\n")
	for _, s := range secrets {
		fmt.Fprintf(&b, "%s=%s\n", Snake(s.Key), shellescape.Quote(s.Value))
	}

	_, werr := f.WriteString(b.String())
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("failed to append secrets to %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("failed to close settings file %s: %w", path, cerr)
	}

	return nil
}

// RegistryName re-reads a just-written settings file and returns the value
// of the registry_name key, or "" when the deployment exposed no registry.
func RegistryName(path string) (string, error) {
	env, err := gotenv.Read(path)
	if err != nil {
		return "", fmt.Errorf("failed to re-read settings file %s: %w", path, err)
	}

	return env["registry_name"], nil
}
