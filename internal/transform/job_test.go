// internal/transform/job_test.go
package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentreq-client/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createRawJob() models.RawJob {
	return models.RawJob{
		Name:               "jobs/123",
		Company:            "companies/acme",
		RequisitionID:      "REQ-001",
		Title:              "Senior Backend Engineer",
		Description:        "Build services.",
		Addresses:          []string{"500 Congress Ave"},
		ApplicationInfo:    models.ApplicationInfo{URIs: []string{"https://acme.example/apply"}},
		PostingPublishTime: 1700000000,
		PostingExpireTime:  1702592000,
		CompanyDisplayName: "Acme Corp",
		CustomAttributes: models.RawCustomAttrs{
			ExperienceLevel:         []string{"Senior"},
			Responsibilities:        models.Text("Design APIs\nReview code"),
			PreferredQualifications: models.List("Go", "Kubernetes"),
			MinimumQualifications:   models.Text("5 years experience"),
			Location:                models.List("Remote-US"),
		},
		DerivedInfo: models.RawDerivedInfo{
			Locations: []models.Location{
				{PostalAddress: models.PostalAddress{Locality: "Austin", AdministrativeArea: "TX"}},
			},
			JobCategories: []int{7},
		},
	}
}

// ==========================
// Normalization Tests
// ==========================

func TestNormalize_ListOrStringFields(t *testing.T) {
	tests := []struct {
		name     string
		field    models.FlexibleStrings
		expected []string
	}{
		{
			name:     "list passes through unchanged",
			field:    models.List("a", "b", "c"),
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "string splits on newlines",
			field:    models.Text("first\nsecond\nthird"),
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "empty segments dropped",
			field:    models.Text("first\n\nsecond\n"),
			expected: []string{"first", "second"},
		},
		{
			name:     "absent field becomes empty list",
			field:    models.FlexibleStrings{},
			expected: []string{},
		},
		{
			name:     "single line string becomes one element",
			field:    models.Text("only item"),
			expected: []string{"only item"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := createRawJob()
			raw.CustomAttributes.Responsibilities = tt.field

			job := Normalize(raw, "")

			assert.Equal(t, tt.expected, job.CustomAttributes.Responsibilities)
		})
	}
}

func TestNormalize_LocationPolicy(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(raw *models.RawJob)
		expected string
	}{
		{
			name:     "derived postal address wins",
			mutate:   func(raw *models.RawJob) {},
			expected: "Austin, TX",
		},
		{
			name: "custom location list when no derived info",
			mutate: func(raw *models.RawJob) {
				raw.DerivedInfo.Locations = nil
			},
			expected: "Remote-US",
		},
		{
			name: "fallback when nothing is set",
			mutate: func(raw *models.RawJob) {
				raw.DerivedInfo.Locations = nil
				raw.CustomAttributes.Location = models.FlexibleStrings{}
			},
			expected: "Remote",
		},
		{
			name: "string-form custom location does not resolve",
			mutate: func(raw *models.RawJob) {
				raw.DerivedInfo.Locations = nil
				raw.CustomAttributes.Location = models.Text("Somewhere")
			},
			expected: "Remote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := createRawJob()
			tt.mutate(&raw)

			job := Normalize(raw, "")

			assert.Equal(t, tt.expected, job.Location)
		})
	}
}

func TestNormalize_Dates(t *testing.T) {
	raw := createRawJob()
	raw.PostingPublishTime = 1700000000
	raw.PostingExpireTime = 1702592000

	job := Normalize(raw, "")

	assert.Equal(t, time.UnixMilli(1700000000*1000).UTC(), job.PostingDate)
	assert.Equal(t, time.UnixMilli(1702592000*1000).UTC(), job.ExpiryDate)
}

func TestNormalize_SessionPassThrough(t *testing.T) {
	raw := createRawJob()

	withSession := Normalize(raw, "sess-42")
	withoutSession := Normalize(raw, "")

	assert.Equal(t, "sess-42", withSession.SessionID)
	assert.Empty(t, withoutSession.SessionID)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := createRawJob()

	first := Normalize(raw, "sess-1")
	second := Normalize(raw, "sess-1")

	assert.Equal(t, first, second)
}

func TestNormalize_DoesNotAliasInput(t *testing.T) {
	raw := createRawJob()

	job := Normalize(raw, "")
	require.NotEmpty(t, job.Addresses)
	job.Addresses[0] = "mutated"
	job.CustomAttributes.PreferredQualifications[0] = "mutated"

	assert.Equal(t, "500 Congress Ave", raw.Addresses[0])
	assert.Equal(t, "Go", raw.CustomAttributes.PreferredQualifications.Values[0])
}

func TestNormalize_AbsentSlicesBecomeEmpty(t *testing.T) {
	raw := models.RawJob{RequisitionID: "REQ-002", Title: "Analyst"}

	job := Normalize(raw, "")

	assert.NotNil(t, job.Addresses)
	assert.NotNil(t, job.ApplicationInfo.URIs)
	assert.NotNil(t, job.CustomAttributes.Responsibilities)
	assert.NotNil(t, job.DerivedInfo.Locations)
	assert.NotNil(t, job.DerivedInfo.JobCategories)
	assert.Empty(t, job.Addresses)
}

// ==========================
// Ordering Tests
// ==========================

func TestSortNewestFirst(t *testing.T) {
	jobs := []models.Job{
		{RequisitionID: "old", PostingDate: time.Unix(100, 0)},
		{RequisitionID: "new", PostingDate: time.Unix(200, 0)},
		{RequisitionID: "mid", PostingDate: time.Unix(150, 0)},
	}

	SortNewestFirst(jobs)

	assert.Equal(t, "new", jobs[0].RequisitionID)
	assert.Equal(t, "mid", jobs[1].RequisitionID)
	assert.Equal(t, "old", jobs[2].RequisitionID)
}

func TestSortNewestFirst_StableOnTies(t *testing.T) {
	ts := time.Unix(100, 0)
	jobs := []models.Job{
		{RequisitionID: "first", PostingDate: ts},
		{RequisitionID: "second", PostingDate: ts},
		{RequisitionID: "third", PostingDate: ts},
	}

	SortNewestFirst(jobs)

	assert.Equal(t, "first", jobs[0].RequisitionID)
	assert.Equal(t, "second", jobs[1].RequisitionID)
	assert.Equal(t, "third", jobs[2].RequisitionID)
}
