package azure

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

var (
	// ErrCreateClient indicates the SDK clients could not be constructed,
	// usually because no Azure credential is available.
	ErrCreateClient = errors.New("failed to create Azure client")

	// ErrNotFound indicates the named resource group or deployment does not
	// exist on the provider side.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied indicates the credential lacks access to the
	// resource it addressed.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDeployment indicates a submitted deployment failed or timed out.
	// The provider's own error detail is carried verbatim in the message.
	ErrDeployment = errors.New("deployment error")
)

// wrapRemoteErr maps provider response errors onto the package sentinels so
// callers can branch with errors.Is; everything else is wrapped with the
// failing operation for context.
func wrapRemoteErr(op string, err error) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %s: %v", ErrPermissionDenied, op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
