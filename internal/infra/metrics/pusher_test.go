package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qpeachy/deactivate-user-airtable/internal/usecase"
)

func sampleReport() *usecase.RunReport {
	started := time.Now().Add(-30 * time.Second)
	return &usecase.RunReport{
		RunID:       "run-1",
		SourceFile:  "users.csv",
		AlreadyDone: 5,
		Skipped:     2,
		Succeeded:   []string{"usr1", "usr2", "usr3"},
		Failed:      []usecase.FailedUser{{ID: "usr4", Reason: "boom"}},
		StartedAt:   started,
		FinishedAt:  time.Now(),
	}
}

func TestRecordRunPushesToTheJobGroup(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewPusher(server.URL).RecordRun(sampleReport())

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/metrics/job/airtable_user_deactivation", gotPath)
}

func TestRecordRunGatewayDownReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := NewPusher(server.URL).RecordRun(sampleReport())

	assert.Error(t, err)
}

func TestRecordRunGatewayRejectionReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no thanks", http.StatusBadRequest)
	}))
	defer server.Close()

	err := NewPusher(server.URL).RecordRun(sampleReport())

	assert.Error(t, err)
}
