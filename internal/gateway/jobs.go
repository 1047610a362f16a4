package gateway

import (
	"context"
	"encoding/json"
	"net/url"

	"talentreq-client/internal/common/errors"
	"talentreq-client/internal/models"
	"talentreq-client/internal/transform"
)

// ListJobs fetches the full job collection, normalizes each record, and
// returns the result sorted by posting date, most recent first.
func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	const op = "list_jobs"

	body, err := c.get(ctx, op, c.jobsURL("/jobs"), false)
	if err != nil {
		return nil, err
	}

	rawJobs, err := c.decodeJobList(op, body)
	if err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(rawJobs))
	for _, raw := range rawJobs {
		jobs = append(jobs, transform.Normalize(raw, ""))
	}
	transform.SortNewestFirst(jobs)

	c.logger.Debug("fetched job list", map[string]interface{}{"count": len(jobs)})
	return jobs, nil
}

// SearchJobs runs a server-side search. Results are normalized but keep the
// backend's ordering.
func (c *Client) SearchJobs(ctx context.Context, query string) ([]models.Job, error) {
	const op = "search_jobs"

	params := url.Values{}
	params.Set("q", query)

	body, err := c.get(ctx, op, c.queryURL("/jobs", params), false)
	if err != nil {
		return nil, err
	}

	rawJobs, err := c.decodeJobList(op, body)
	if err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(rawJobs))
	for _, raw := range rawJobs {
		jobs = append(jobs, transform.Normalize(raw, ""))
	}
	return jobs, nil
}

// GetJobTalents fetches the screening payload for a requisition: the job
// description, the recommended talent roster, and the opaque session id that
// scopes later chat queries. Requires the stored access token.
func (c *Client) GetJobTalents(ctx context.Context, jobID string) (*models.TalentResponse, error) {
	const op = "get_job_talents"

	body, err := c.get(ctx, op, c.jobsURL("/jobs/"+url.PathEscape(jobID)+"/talents"), true)
	if err != nil {
		return nil, err
	}

	if err := validatePayload(op, body, talentResponseSchema); err != nil {
		return nil, err
	}

	var resp models.TalentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewDeserializationError(op, err)
	}

	c.logger.Debug("fetched talent roster", map[string]interface{}{
		"jobId":   jobID,
		"talents": len(resp.Talents),
	})
	return &resp, nil
}

// GetJobDetail fetches the screening payload and folds both the job
// description and the session id into a normalized Job.
func (c *Client) GetJobDetail(ctx context.Context, jobID string) (models.Job, error) {
	resp, err := c.GetJobTalents(ctx, jobID)
	if err != nil {
		return models.Job{}, err
	}
	return transform.Normalize(resp.JobDesc, resp.SessionID), nil
}

func (c *Client) decodeJobList(op string, body []byte) ([]models.RawJob, error) {
	if err := validatePayload(op, body, jobListSchema); err != nil {
		return nil, err
	}

	var rawJobs []models.RawJob
	if err := json.Unmarshal(body, &rawJobs); err != nil {
		return nil, errors.NewDeserializationError(op, err)
	}
	return rawJobs, nil
}
