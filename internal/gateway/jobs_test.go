// internal/gateway/jobs_test.go
package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentreq-client/internal/common/errors"
	"talentreq-client/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestClient(t *testing.T, server *httptest.Server, token string) *Client {
	return New(Options{
		JobsBaseURL: server.URL,
		Tokens:      StaticToken(token),
		Logger:      logger.NewTestLogger(t),
	})
}

const jobListFixture = `[
	{
		"requisition_id": "REQ-OLD",
		"title": "Recruiter",
		"company_display_name": "Acme Corp",
		"posting_publish_time": 1000,
		"posting_expire_time": 2000,
		"custom_attributes": {
			"responsibilities": "Source candidates\nRun interviews",
			"preferred_qualifications": ["ATS experience"],
			"minimum_qualifications": "2 years recruiting",
			"location": ["Remote-US"]
		}
	},
	{
		"requisition_id": "REQ-NEW",
		"title": "Backend Engineer",
		"company_display_name": "Acme Corp",
		"posting_publish_time": 2000,
		"posting_expire_time": 3000,
		"derived_info": {
			"locations": [
				{"postal_address": {"locality": "Austin", "administrative_area": "TX"}}
			]
		}
	}
]`

const talentResponseFixture = `{
	"jobDesc": {
		"requisition_id": "REQ-NEW",
		"title": "Backend Engineer",
		"company_display_name": "Acme Corp",
		"posting_publish_time": 2000,
		"posting_expire_time": 3000
	},
	"session_id": "sess-77",
	"talents": [
		{
			"employee_id": 101,
			"employee_name": "Dana Smith",
			"employee_department": "Engineering",
			"role": "Backend Engineer",
			"experience": 6.5,
			"match_score": 87.2
		}
	]
}`

// ==========================
// Job List Tests
// ==========================

func TestListJobs_SortedNewestFirst(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(jobListFixture))
	}))
	defer server.Close()

	client := newTestClient(t, server, "")

	jobs, err := client.ListJobs(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "REQ-NEW", jobs[0].RequisitionID)
	assert.Equal(t, "REQ-OLD", jobs[1].RequisitionID)
}

func TestListJobs_NormalizesRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jobListFixture))
	}))
	defer server.Close()

	client := newTestClient(t, server, "")

	jobs, err := client.ListJobs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Austin, TX", jobs[0].Location)
	assert.Equal(t, "Remote-US", jobs[1].Location)
	assert.Equal(t, []string{"Source candidates", "Run interviews"}, jobs[1].CustomAttributes.Responsibilities)
	assert.Empty(t, jobs[0].SessionID)
}

func TestListJobs_GatewayErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server, "")

	_, err := client.ListJobs(context.Background())

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeGatewayStatus, errors.CodeOf(err))
}

func TestListJobs_InvalidPayloadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title": 42}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "")

	_, err := client.ListJobs(context.Background())

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePayloadInvalid, errors.CodeOf(err))
}

// ==========================
// Search Tests
// ==========================

func TestSearchJobs_SendsQueryAndKeepsBackendOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "engineer", r.URL.Query().Get("q"))
		w.Write([]byte(jobListFixture))
	}))
	defer server.Close()

	client := newTestClient(t, server, "")

	jobs, err := client.SearchJobs(context.Background(), "engineer")

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	// Fixture order preserved, no re-sort.
	assert.Equal(t, "REQ-OLD", jobs[0].RequisitionID)
	assert.Equal(t, "REQ-NEW", jobs[1].RequisitionID)
}

// ==========================
// Talent Roster Tests
// ==========================

func TestGetJobTalents_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/REQ-NEW/talents", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		w.Write([]byte(talentResponseFixture))
	}))
	defer server.Close()

	client := newTestClient(t, server, "token-abc")

	resp, err := client.GetJobTalents(context.Background(), "REQ-NEW")

	require.NoError(t, err)
	assert.Equal(t, "sess-77", resp.SessionID)
	require.Len(t, resp.Talents, 1)
	assert.Equal(t, 101, resp.Talents[0].EmployeeID)
	assert.Equal(t, "Dana Smith", resp.Talents[0].EmployeeName)
}

func TestGetJobTalents_MissingSessionIDRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jobDesc": {"requisition_id": "X", "title": "Y"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "token-abc")

	_, err := client.GetJobTalents(context.Background(), "X")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePayloadInvalid, errors.CodeOf(err))
}

func TestGetJobDetail_FoldsSessionIntoJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(talentResponseFixture))
	}))
	defer server.Close()

	client := newTestClient(t, server, "token-abc")

	job, err := client.GetJobDetail(context.Background(), "REQ-NEW")

	require.NoError(t, err)
	assert.Equal(t, "REQ-NEW", job.RequisitionID)
	assert.Equal(t, "sess-77", job.SessionID)
	assert.Equal(t, "Remote", job.Location)
}
