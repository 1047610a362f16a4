// internal/screening/flow_test.go
package screening

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentreq-client/internal/common/errors"
	"talentreq-client/internal/common/logger"
	"talentreq-client/internal/models"
	"talentreq-client/internal/session"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeRosterBackend struct {
	resp  *models.TalentResponse
	err   error
	calls int
	// hook runs after the fetch, before the handoff commits. Lets a test
	// start a competing selection while this one is in flight.
	hook func()
}

func (f *fakeRosterBackend) GetJobTalents(ctx context.Context, jobID string) (*models.TalentResponse, error) {
	f.calls++
	if f.hook != nil {
		f.hook()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type recordingNavigator struct {
	routes []session.Route
}

func (r *recordingNavigator) Navigate(route session.Route) {
	r.routes = append(r.routes, route)
}

func newTestStore(t *testing.T, token string, nav session.Navigator) *session.Store {
	creds := &session.MemoryCredentials{}
	if token != "" {
		require.NoError(t, creds.SetAccessToken(token))
	}
	return session.NewStore(session.Dependencies{
		Credentials: creds,
		Navigator:   nav,
		Logger:      logger.NewTestLogger(t),
	})
}

func testRoster(sessionID string) *models.TalentResponse {
	return &models.TalentResponse{
		JobDesc:   models.RawJob{RequisitionID: "REQ-1", Title: "Backend Engineer"},
		SessionID: sessionID,
		Talents: []models.Talent{
			{EmployeeID: 101, EmployeeName: "Dana Smith"},
		},
	}
}

func testJob(id string) models.Job {
	return models.Job{RequisitionID: id, Title: "Backend Engineer"}
}

// ==========================
// Selection Tests
// ==========================

func TestSelectJob_BindsRosterAndNavigates(t *testing.T) {
	nav := &recordingNavigator{}
	store := newTestStore(t, "token-abc", nav)
	backend := &fakeRosterBackend{resp: testRoster("sess-42")}
	handoff := NewHandoff(store, backend, logger.NewTestLogger(t))

	err := handoff.SelectJob(context.Background(), testJob("REQ-1"))

	require.NoError(t, err)
	assert.Equal(t, "sess-42", store.SessionID())
	require.NotNil(t, store.Roster())
	assert.Equal(t, []session.Route{session.ScreeningRoute("REQ-1")}, nav.routes)
}

func TestSelectJob_WithoutTokenNothingHappens(t *testing.T) {
	nav := &recordingNavigator{}
	store := newTestStore(t, "", nav)
	backend := &fakeRosterBackend{resp: testRoster("sess-42")}
	handoff := NewHandoff(store, backend, logger.NewTestLogger(t))

	err := handoff.SelectJob(context.Background(), testJob("REQ-1"))

	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
	assert.Zero(t, backend.calls)
	assert.Empty(t, store.SessionID())
	assert.Nil(t, store.Roster())
	assert.Empty(t, nav.routes)
}

func TestSelectJob_FetchFailureLeavesStateUntouched(t *testing.T) {
	nav := &recordingNavigator{}
	store := newTestStore(t, "token-abc", nav)
	backend := &fakeRosterBackend{err: errors.NewGatewayStatusError("get_job_talents", 503, "down")}
	handoff := NewHandoff(store, backend, logger.NewTestLogger(t))

	err := handoff.SelectJob(context.Background(), testJob("REQ-1"))

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeGatewayStatus, errors.CodeOf(err))
	assert.Empty(t, store.SessionID())
	assert.Nil(t, store.Roster())
	assert.Empty(t, nav.routes)
}

func TestSelectJob_StaleResponseDropped(t *testing.T) {
	nav := &recordingNavigator{}
	store := newTestStore(t, "token-abc", nav)

	backend := &fakeRosterBackend{resp: testRoster("sess-stale")}
	backend.hook = func() {
		// A newer selection lands while this fetch is in flight.
		gen := store.BeginSelection()
		store.CommitSelection(context.Background(), gen, testRoster("sess-current"))
	}
	handoff := NewHandoff(store, backend, logger.NewTestLogger(t))

	err := handoff.SelectJob(context.Background(), testJob("REQ-1"))

	require.NoError(t, err)
	assert.Equal(t, "sess-current", store.SessionID())
	assert.Equal(t, "sess-current", store.Roster().SessionID)
	// The dropped selection must not navigate to its screening view.
	assert.Empty(t, nav.routes)
}
