package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "flowx/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "already resolved")
	assert.Equal(t, "409: already resolved", err.Error())
	assert.Equal(t, http.StatusConflict, err.Code)

	var target *pkgErrors.HTTPError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, "already resolved", target.Message)
}
