package models

// SessionSnapshot is a read-only copy of the process-wide session state,
// handed out by the session store so callers never hold references into its
// mutable internals.
type SessionSnapshot struct {
	User        *User           `json:"user,omitempty"`
	SessionID   string          `json:"sessionId,omitempty"`
	JobResponse *TalentResponse `json:"jobResponse,omitempty"`
}

// Authenticated reports whether a user record is bound to the session.
func (s SessionSnapshot) Authenticated() bool {
	return s.User != nil
}
