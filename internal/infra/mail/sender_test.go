package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qpeachy/deactivate-user-airtable/internal/usecase"
)

func TestBuildSummaryBodyListsFailedUsers(t *testing.T) {
	report := &usecase.RunReport{
		RunID:       "run-1",
		SourceFile:  "users.csv",
		AlreadyDone: 3,
		Skipped:     2,
		Succeeded:   []string{"usr1", "usr2"},
		Failed: []usecase.FailedUser{
			{ID: "usr3", Reason: "first name: is missing or invalid"},
		},
	}

	body, err := buildSummaryBody(report)
	require.NoError(t, err)

	assert.Contains(t, body, "run-1")
	assert.Contains(t, body, "users.csv")
	assert.Contains(t, body, "Deactivated this run:     2")
	assert.Contains(t, body, "Failed this run:          1")
	assert.Contains(t, body, "usr3: first name: is missing or invalid")
}

func TestBuildSummaryBodyOmitsFailedSectionWhenClean(t *testing.T) {
	report := &usecase.RunReport{
		RunID:      "run-2",
		SourceFile: "users.csv",
		Succeeded:  []string{"usr1"},
	}

	body, err := buildSummaryBody(report)
	require.NoError(t, err)

	assert.NotContains(t, body, "Failed users:")
}
