package servers_test

import (
	"testing"

	"storefront/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()

	require.NoError(t, err)
	assert.Equal(t, "Storefront back office", swagger.Info.Title)

	for _, path := range []string{
		"/api/v1/orders",
		"/api/v1/orders/{orderId}",
		"/api/v1/orders/{orderId}/status",
		"/api/v1/orders/{orderId}/tracking-notification",
		"/api/v1/transitions/validate",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}

	status := swagger.Components.Schemas["OrderStatus"].Value
	require.NotNil(t, status)
	assert.Len(t, status.Enum, 6)
}
