package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissionStatus(t *testing.T) {
	t.Run(`terminal statuses check`, func(t *testing.T) {
		require.Equal(t, true, MissionStatusCompleted.IsTerminal())
		require.Equal(t, true, MissionStatusRejected.IsTerminal())
		require.Equal(t, true, MissionStatusCancelled.IsTerminal())
		require.Equal(t, false, MissionStatusDraft.IsTerminal())
		require.Equal(t, false, MissionStatusSubmitted.IsTerminal())
		require.Equal(t, false, MissionStatusApprovedFinance.IsTerminal())
	})

	t.Run(`reject allowed only in approval chain`, func(t *testing.T) {
		require.Equal(t, false, MissionStatusDraft.AllowReject())
		require.Equal(t, true, MissionStatusSubmitted.AllowReject())
		require.Equal(t, true, MissionStatusApprovedManager.AllowReject())
		require.Equal(t, true, MissionStatusApprovedHr.AllowReject())
		require.Equal(t, true, MissionStatusApprovedFinance.AllowReject())
		require.Equal(t, false, MissionStatusCompleted.AllowReject())
		require.Equal(t, false, MissionStatusRejected.AllowReject())
		require.Equal(t, false, MissionStatusCancelled.AllowReject())
	})

	t.Run(`cancel allowed until terminal`, func(t *testing.T) {
		require.Equal(t, true, MissionStatusDraft.AllowCancel())
		require.Equal(t, true, MissionStatusSubmitted.AllowCancel())
		require.Equal(t, false, MissionStatusCompleted.AllowCancel())
		require.Equal(t, false, MissionStatusCancelled.AllowCancel())
	})

	t.Run(`unknown status falls back to raw value`, func(t *testing.T) {
		require.Equal(t, "UNKNOWN", MissionStatus("UNKNOWN").ToHuman())
		require.Equal(t, "Черновик", MissionStatusDraft.ToHuman())
	})
}

func TestTrainingPlanStatus(t *testing.T) {
	t.Run(`reject not allowed from draft and terminal`, func(t *testing.T) {
		require.Equal(t, false, TrainingPlanStatusDraft.AllowReject())
		require.Equal(t, true, TrainingPlanStatusSubmitted.AllowReject())
		require.Equal(t, true, TrainingPlanStatusApprovedFinance.AllowReject())
		require.Equal(t, false, TrainingPlanStatusCompleted.AllowReject())
		require.Equal(t, false, TrainingPlanStatusRejected.AllowReject())
	})
}

func TestTrainingItemStatus(t *testing.T) {
	t.Run(`terminal statuses check`, func(t *testing.T) {
		require.Equal(t, true, TrainingItemStatusCompleted.IsTerminal())
		require.Equal(t, true, TrainingItemStatusCancelled.IsTerminal())
		require.Equal(t, false, TrainingItemStatusPlanned.IsTerminal())
		require.Equal(t, false, TrainingItemStatusScheduled.IsTerminal())
		require.Equal(t, false, TrainingItemStatusInProgress.IsTerminal())
	})

	t.Run(`complete allowed from scheduled and in progress`, func(t *testing.T) {
		require.Equal(t, false, TrainingItemStatusPlanned.AllowComplete())
		require.Equal(t, true, TrainingItemStatusScheduled.AllowComplete())
		require.Equal(t, true, TrainingItemStatusInProgress.AllowComplete())
		require.Equal(t, false, TrainingItemStatusCompleted.AllowComplete())
		require.Equal(t, false, TrainingItemStatusCancelled.AllowComplete())
	})
}

func TestAccessLevel(t *testing.T) {
	t.Run(`levels are totally ordered`, func(t *testing.T) {
		ordered := []AccessLevel{AccessNone, AccessRead, AccessCreate, AccessUpdate, AccessDelete, AccessAdmin}
		for i := 1; i < len(ordered); i++ {
			require.Equal(t, true, ordered[i].AtLeast(ordered[i-1]))
			require.Equal(t, false, ordered[i-1].AtLeast(ordered[i]))
		}
	})

	t.Run(`max access check`, func(t *testing.T) {
		require.Equal(t, AccessAdmin, MaxAccess(AccessRead, AccessAdmin))
		require.Equal(t, AccessUpdate, MaxAccess(AccessUpdate, AccessCreate))
		require.Equal(t, AccessNone, MaxAccess(AccessNone, AccessNone))
	})

	t.Run(`validation check`, func(t *testing.T) {
		require.Equal(t, true, AccessRead.IsValid())
		require.Equal(t, false, AccessLevel("SUPER").IsValid())
	})
}
