package access

import (
	"testing"

	"erp-tools-backend/models"
	dbmodels "erp-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestRecomputeGrantedCapabilities(t *testing.T) {
	t.Run(`capabilities are cumulative by level`, func(t *testing.T) {
		require.Empty(t, RecomputeGrantedCapabilities(models.AccessNone))
		require.Equal(t, []models.Capability{models.CapabilityView}, RecomputeGrantedCapabilities(models.AccessRead))
		require.Equal(t,
			[]models.Capability{models.CapabilityView, models.CapabilityAdd},
			RecomputeGrantedCapabilities(models.AccessCreate))
		require.Equal(t,
			[]models.Capability{models.CapabilityView, models.CapabilityAdd, models.CapabilityChange},
			RecomputeGrantedCapabilities(models.AccessUpdate))
		require.Equal(t,
			[]models.Capability{models.CapabilityView, models.CapabilityAdd, models.CapabilityChange, models.CapabilityDelete},
			RecomputeGrantedCapabilities(models.AccessDelete))
	})

	t.Run(`admin grants the full set`, func(t *testing.T) {
		require.Equal(t,
			RecomputeGrantedCapabilities(models.AccessDelete),
			RecomputeGrantedCapabilities(models.AccessAdmin))
	})

	t.Run(`downgrade drops stale capabilities`, func(t *testing.T) {
		wide := RecomputeGrantedCapabilities(models.AccessDelete)
		narrow := RecomputeGrantedCapabilities(models.AccessRead)
		require.Len(t, wide, 4)
		require.Len(t, narrow, 1)
		require.NotContains(t, narrow, models.CapabilityDelete)
	})

	t.Run(`string conversion check`, func(t *testing.T) {
		result := CapabilityStrings(RecomputeGrantedCapabilities(models.AccessCreate))
		require.Equal(t, []string{"VIEW", "ADD"}, result)
	})
}

func TestResolveForUser(t *testing.T) {
	hrRead := dbmodels.Role{
		Permissions: []dbmodels.RolePermission{
			{Module: models.HrModule, Access: models.AccessRead},
		},
	}
	hrDelete := dbmodels.Role{
		Permissions: []dbmodels.RolePermission{
			{Module: models.HrModule, Access: models.AccessDelete},
			{Module: models.UsersModule, Access: models.AccessRead},
		},
	}

	t.Run(`max level across roles wins`, func(t *testing.T) {
		user := dbmodels.User{Roles: []dbmodels.Role{hrRead, hrDelete}}
		require.Equal(t, models.AccessDelete, resolveForUser(user, models.HrModule))
		require.Equal(t, models.AccessRead, resolveForUser(user, models.UsersModule))
	})

	t.Run(`module without permission gives no access`, func(t *testing.T) {
		user := dbmodels.User{Roles: []dbmodels.Role{hrRead}}
		require.Equal(t, models.AccessNone, resolveForUser(user, models.PayrollModule))
	})

	t.Run(`user without roles has no access`, func(t *testing.T) {
		user := dbmodels.User{}
		require.Equal(t, models.AccessNone, resolveForUser(user, models.HrModule))
	})

	t.Run(`superuser gets admin everywhere`, func(t *testing.T) {
		user := dbmodels.User{IsSuperuser: true}
		for _, module := range models.AllModules {
			require.Equal(t, models.AccessAdmin, resolveForUser(user, module))
		}
	})
}
