package azure

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"

	"github.com/stackhaven/azenv/internal/naming"
)

func testIdentity() naming.Identity {
	return naming.Identity{Project: "demo", Environment: "prod", Location: "eastus2"}
}

func responseError(code int) error {
	return &azcore.ResponseError{
		StatusCode: code,
		RawResponse: &http.Response{
			StatusCode: code,
			Status:     http.StatusText(code),
			Body:       http.NoBody,
			Request:    httptest.NewRequest(http.MethodGet, "https://management.azure.com/", nil),
		},
	}
}

func TestWrapRemoteErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "404 maps to ErrNotFound",
			err:  responseError(http.StatusNotFound),
			want: ErrNotFound,
		},
		{
			name: "403 maps to ErrPermissionDenied",
			err:  responseError(http.StatusForbidden),
			want: ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapRemoteErr("show deployment", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "show deployment")
		})
	}
}

func TestWrapRemoteErrPassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("connection reset")
	got := wrapRemoteErr("cancel deployment", cause)

	assert.ErrorIs(t, got, cause)
	assert.NotErrorIs(t, got, ErrNotFound)
	assert.Contains(t, got.Error(), "cancel deployment")
}

func TestWrapRemoteErrConflictPassesThrough(t *testing.T) {
	// A conflict (deployment already completed, concurrent deployment) is
	// surfaced verbatim rather than mapped to a sentinel.
	got := wrapRemoteErr("cancel deployment", responseError(http.StatusConflict))

	assert.NotErrorIs(t, got, ErrNotFound)
	assert.NotErrorIs(t, got, ErrPermissionDenied)
}
