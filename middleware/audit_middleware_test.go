package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	t.Run(`module entity and id check`, func(t *testing.T) {
		module, entityType, entityID := parsePath("/api/v1/training/plans/123-321")
		require.Equal(t, "training", module)
		require.Equal(t, "plans", entityType)
		require.Equal(t, "123-321", entityID)
	})

	t.Run(`collection path without id`, func(t *testing.T) {
		module, entityType, entityID := parsePath("/api/v1/missions/list")
		require.Equal(t, "missions", module)
		require.Equal(t, "list", entityType)
		require.Equal(t, "", entityID)
	})

	t.Run(`root module path`, func(t *testing.T) {
		module, entityType, entityID := parsePath("/api/v1/employees")
		require.Equal(t, "employees", module)
		require.Equal(t, "", entityType)
		require.Equal(t, "", entityID)
	})
}
