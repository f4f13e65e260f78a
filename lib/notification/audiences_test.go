package notification

import (
	"testing"

	"erp-tools-backend/models"

	"github.com/stretchr/testify/require"
)

func TestFindAudience(t *testing.T) {
	t.Run(`exact transition check`, func(t *testing.T) {
		rule, found := findAudience(models.StatusEvent{
			Entity:    models.MissionEntity,
			OldStatus: string(models.MissionStatusDraft),
			NewStatus: string(models.MissionStatusSubmitted),
		})
		require.Equal(t, true, found)
		require.Equal(t, audience{Employee: true, Manager: true, Hr: true}, rule)
	})

	t.Run(`wildcard matches reject from any chain status`, func(t *testing.T) {
		for _, old := range []models.MissionStatus{
			models.MissionStatusSubmitted,
			models.MissionStatusApprovedManager,
			models.MissionStatusApprovedHr,
			models.MissionStatusApprovedFinance,
		} {
			rule, found := findAudience(models.StatusEvent{
				Entity:    models.MissionEntity,
				OldStatus: string(old),
				NewStatus: string(models.MissionStatusRejected),
			})
			require.Equal(t, true, found)
			require.Equal(t, audience{Employee: true, Manager: true}, rule)
		}
	})

	t.Run(`unknown transition has no audience`, func(t *testing.T) {
		_, found := findAudience(models.StatusEvent{
			Entity:    models.MissionEntity,
			OldStatus: string(models.MissionStatusCompleted),
			NewStatus: string(models.MissionStatusDraft),
		})
		require.Equal(t, false, found)
	})

	t.Run(`availability cancel notifies employee only`, func(t *testing.T) {
		rule, found := findAudience(models.StatusEvent{
			Entity:    models.AvailabilityEntity,
			OldStatus: string(models.AvailabilityStatusRequested),
			NewStatus: string(models.AvailabilityStatusCancelled),
		})
		require.Equal(t, true, found)
		require.Equal(t, audience{Employee: true}, rule)
	})
}

func TestStatusHuman(t *testing.T) {
	t.Run(`status rendered per entity`, func(t *testing.T) {
		require.Equal(t, "Черновик", statusHuman(models.MissionEntity, "DRAFT"))
		require.Equal(t, "Запрошена", statusHuman(models.AvailabilityEntity, "REQUESTED"))
		require.Equal(t, "Запланировано", statusHuman(models.TrainingItemEntity, "PLANNED"))
		require.Equal(t, "UNKNOWN", statusHuman(models.MissionEntity, "UNKNOWN"))
	})
}

func TestBuildMessage(t *testing.T) {
	t.Run(`plain and html parts`, func(t *testing.T) {
		raw, err := buildMessage("erp@localhost", []string{"emp@localhost"}, models.StatusEvent{
			Entity:    models.MissionEntity,
			OldStatus: string(models.MissionStatusDraft),
			NewStatus: string(models.MissionStatusSubmitted),
			Comment:   "прошу согласовать",
		})
		require.Nil(t, err)
		msg := string(raw)
		require.Contains(t, msg, "multipart/alternative")
		require.Contains(t, msg, "text/plain")
		require.Contains(t, msg, "text/html")
	})
}
