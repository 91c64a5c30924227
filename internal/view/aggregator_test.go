package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
)

func TestAppliedOpeningIDs(t *testing.T) {
	apps := []models.Application{
		{ID: "a1", StudentID: "s1", OpeningID: "o1", Status: models.StatusApplied},
		{ID: "a2", StudentID: "s1", OpeningID: "o3", Status: models.StatusShortlisted},
	}
	set := AppliedOpeningIDs(apps)
	require.Len(t, set, 2)
	_, ok := set["o1"]
	require.True(t, ok)
	_, ok = set["o3"]
	require.True(t, ok)
	_, ok = set["o2"]
	require.False(t, ok)

	require.Empty(t, AppliedOpeningIDs(nil))
}

func TestSummaryCountsMatchSnapshotSizes(t *testing.T) {
	openings := []models.Opening{{ID: "o1"}, {ID: "o2"}, {ID: "o3"}}
	apps := []models.Application{{ID: "a1", OpeningID: "o1"}}
	user := models.User{ID: "s1", Role: models.RoleStudent}

	sum := SummaryCounts(openings, apps, user)
	require.Equal(t, len(openings), sum.OpeningCount)
	require.Equal(t, len(apps), sum.ApplicationCount)
	require.Equal(t, models.RoleStudent, sum.Role)

	empty := SummaryCounts(nil, nil, models.User{Role: models.RoleMentor})
	require.Zero(t, empty.OpeningCount)
	require.Zero(t, empty.ApplicationCount)
}
