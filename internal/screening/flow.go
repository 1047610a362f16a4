// Package screening binds job selection to the talent-roster fetch and the
// chat-session association: a screening view for a job exists only after its
// talents endpoint has answered, and the session id it carries is what later
// chat queries are scoped to.
package screening

import (
	"context"

	"talentreq-client/internal/common/errors"
	"talentreq-client/internal/common/logger"
	"talentreq-client/internal/models"
	"talentreq-client/internal/session"
)

// RosterBackend is the slice of the gateway the handoff needs.
type RosterBackend interface {
	GetJobTalents(ctx context.Context, jobID string) (*models.TalentResponse, error)
}

// Handoff orchestrates job selection. Each selection gets a generation from
// the store; a slow response from an earlier selection can no longer
// overwrite the state of a later one.
type Handoff struct {
	store   *session.Store
	backend RosterBackend
	logger  logger.Logger
}

func NewHandoff(store *session.Store, backend RosterBackend, log logger.Logger) *Handoff {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Handoff{store: store, backend: backend, logger: log}
}

// SelectJob fetches the talent roster for a job and, if this selection is
// still the current one, commits the roster and session id to the session
// store and signals navigation to the screening view. Without a stored
// access token nothing is fetched, nothing mutates, and the caller gets an
// explicit unauthenticated error.
func (h *Handoff) SelectJob(ctx context.Context, job models.Job) error {
	token, err := h.store.AccessToken()
	if err != nil {
		return errors.NewCredentialStoreError("select_job", err)
	}
	if token == "" {
		h.logger.Warn("job selected without stored access token", map[string]interface{}{
			"requisitionId": job.RequisitionID,
		})
		return errors.NewUnauthenticatedError("select_job")
	}

	gen := h.store.BeginSelection()

	resp, err := h.backend.GetJobTalents(ctx, job.RequisitionID)
	if err != nil {
		h.logger.Error("talent roster fetch failed", map[string]interface{}{
			"requisitionId": job.RequisitionID,
			"error":         err.Error(),
		})
		return err
	}

	if !h.store.CommitSelection(ctx, gen, resp) {
		// A newer selection started while this one was in flight; its view
		// owns the session state now.
		return nil
	}

	h.logger.Info("screening session bound", map[string]interface{}{
		"requisitionId": job.RequisitionID,
		"talents":       len(resp.Talents),
	})

	h.store.Navigate(session.ScreeningRoute(job.RequisitionID))
	return nil
}
