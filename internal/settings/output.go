// Package settings materializes deployment outputs into a per-environment,
// shell-sourceable key/value file.
//
// The file is the durable artifact of a run: it is rewritten from scratch on
// every create or env invocation and then appended to with a secrets section.
// Keys are canonicalized to lower snake case before being written so that
// consumers never depend on the provider's casing.
package settings

import "errors"

// ErrMalformedOutput is returned when a deployment output entry cannot be
// represented as a settings line. A single malformed entry aborts the whole
// materialization; nothing is written.
var ErrMalformedOutput = errors.New("malformed deployment output")

// OutputType distinguishes scalar outputs from array outputs.
type OutputType int

const (
	Scalar OutputType = iota
	Array
)

// Output is one deployment output entry as extracted from the provider
// response. Value holds the scalar form; Values holds the elements when
// Type is Array.
type Output struct {
	Key    string
	Type   OutputType
	Value  string
	Values []string
}

// Secret is one credential pair appended under the secrets section.
type Secret struct {
	Key   string
	Value string
}
