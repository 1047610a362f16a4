package transform

import (
	"strings"

	"talentreq-client/internal/models"
)

// FilterJobs narrows an in-memory job list by a case-insensitive substring
// match over title and company display name.
func FilterJobs(jobs []models.Job, term string) []models.Job {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return jobs
	}

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if strings.Contains(strings.ToLower(job.Title), term) ||
			strings.Contains(strings.ToLower(job.CompanyDisplayName), term) {
			out = append(out, job)
		}
	}
	return out
}

// Paginate returns the given 1-based page of the list. Out-of-range pages
// yield an empty slice rather than panicking.
func Paginate(jobs []models.Job, page, perPage int) []models.Job {
	if page < 1 || perPage < 1 {
		return []models.Job{}
	}

	start := (page - 1) * perPage
	if start >= len(jobs) {
		return []models.Job{}
	}

	end := start + perPage
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}
