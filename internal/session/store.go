// Package session holds the process-wide authentication and screening state.
// The store is an explicit dependency-injected struct with an Init/Close
// lifecycle; nothing in the application reaches for ambient globals.
package session

import (
	"context"
	"sync"

	"talentreq-client/internal/common/errors"
	"talentreq-client/internal/common/logger"
	"talentreq-client/internal/common/metrics"
	"talentreq-client/internal/models"
)

// AuthState is the session's authentication state.
type AuthState string

const (
	StateAnonymous     AuthState = "anonymous"
	StateAuthenticated AuthState = "authenticated"
)

// Route identifies a UI destination the store asks the shell to present.
type Route string

const (
	RouteLogin Route = "/"
	RouteJobs  Route = "/jobs"
)

// ScreeningRoute is the screening view for one requisition.
func ScreeningRoute(requisitionID string) Route {
	return Route("/jobs/" + requisitionID + "/talents")
}

// Navigator receives navigation signals from session operations. The UI
// shell implements it; tests mock it.
type Navigator interface {
	Navigate(route Route)
}

// NopNavigator ignores navigation signals.
type NopNavigator struct{}

func (NopNavigator) Navigate(Route) {}

// AuthBackend is the slice of the gateway the store needs for auth.
type AuthBackend interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password, name string) error
}

// Store is the single session-state instance for the process.
type Store struct {
	mu          sync.RWMutex
	user        *models.User
	sessionID   string
	jobResponse *models.TalentResponse
	generation  uint64

	creds   Credentials
	backend AuthBackend
	nav     Navigator
	cache   *Cache
	logger  logger.Logger
}

// Dependencies wires a Store. Cache is optional.
type Dependencies struct {
	Credentials Credentials
	Backend     AuthBackend
	Navigator   Navigator
	Cache       *Cache
	Logger      logger.Logger
}

func NewStore(deps Dependencies) *Store {
	if deps.Navigator == nil {
		deps.Navigator = NopNavigator{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	return &Store{
		creds:   deps.Credentials,
		backend: deps.Backend,
		nav:     deps.Navigator,
		cache:   deps.Cache,
		logger:  deps.Logger,
	}
}

// Init rehydrates persisted state. A stored user record starts the session
// Authenticated; the token's validity is not re-checked against the backend.
func (s *Store) Init(ctx context.Context) error {
	user, err := s.creds.User()
	if err != nil {
		return errors.NewCredentialStoreError("init", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if user != nil {
		s.logger.Info("session rehydrated", map[string]interface{}{"email": user.Email})
	}

	if s.cache != nil {
		if snap, err := s.cache.Load(ctx); err == nil && snap != nil {
			s.mu.Lock()
			s.sessionID = snap.SessionID
			s.jobResponse = snap.JobResponse
			s.mu.Unlock()
		}
	}

	return nil
}

// Close tears down in-memory state; persisted credentials are untouched.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.sessionID = ""
	s.jobResponse = nil
}

// State reports the current authentication state.
func (s *Store) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user != nil {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Snapshot returns a read-only copy of the session state.
func (s *Store) Snapshot() models.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.SessionSnapshot{SessionID: s.sessionID}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if s.jobResponse != nil {
		r := *s.jobResponse
		snap.JobResponse = &r
	}
	return snap
}

// SessionID returns the active screening session id, read at send time by
// the chat feature.
func (s *Store) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// Roster returns the last-fetched talent roster, or nil.
func (s *Store) Roster() *models.TalentResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.jobResponse == nil {
		return nil
	}
	r := *s.jobResponse
	return &r
}

// AccessToken exposes the persisted token for the gateway's TokenSource.
func (s *Store) AccessToken() (string, error) {
	return s.creds.AccessToken()
}

// Login transitions Anonymous to Authenticated: the token is persisted, a
// minimal user record derived from the email is stored, and the caller is
// signaled to navigate to the job list. On any failure the state is left
// untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", map[string]interface{}{"email": email})
		return err
	}

	if err := s.creds.SetAccessToken(token); err != nil {
		return errors.NewCredentialStoreError("login", err)
	}

	user := models.UserFromEmail(email)
	if err := s.creds.SetUser(user); err != nil {
		return errors.NewCredentialStoreError("login", err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	metrics.SessionTransitions.WithLabelValues("login").Inc()
	s.nav.Navigate(RouteJobs)
	return nil
}

// Register creates an account; it does not change the auth state. On
// success the caller is pointed back at the login view.
func (s *Store) Register(ctx context.Context, email, password, name string) error {
	if err := s.backend.Register(ctx, email, password, name); err != nil {
		return err
	}

	metrics.SessionTransitions.WithLabelValues("register").Inc()
	s.nav.Navigate(RouteLogin)
	return nil
}

// Logout clears the in-memory session, the persisted user record, and the
// persisted access token, then signals navigation to the entry screen.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.creds.ClearUser(); err != nil {
		return errors.NewCredentialStoreError("logout", err)
	}
	if err := s.creds.ClearAccessToken(); err != nil {
		return errors.NewCredentialStoreError("logout", err)
	}

	s.mu.Lock()
	s.user = nil
	s.sessionID = ""
	s.jobResponse = nil
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Clear(ctx); err != nil {
			s.logger.Warn("failed to clear screening cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	metrics.SessionTransitions.WithLabelValues("logout").Inc()
	s.nav.Navigate(RouteLogin)
	return nil
}

// UpdateSessionID unconditionally overwrites the stored screening session id.
func (s *Store) UpdateSessionID(ctx context.Context, id string) {
	s.mu.Lock()
	s.sessionID = id
	s.mu.Unlock()

	s.syncCache(ctx)
}

// BeginSelection starts a new job selection and invalidates any in-flight
// one: results committed under an older generation are discarded.
func (s *Store) BeginSelection() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// CommitSelection binds the roster and session id for a completed selection.
// It reports false, without mutating anything, when a newer selection has
// started since gen was issued.
func (s *Store) CommitSelection(ctx context.Context, gen uint64, resp *models.TalentResponse) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("discarding stale selection result", map[string]interface{}{
			"generation": gen,
		})
		return false
	}
	s.jobResponse = resp
	s.sessionID = resp.SessionID
	s.mu.Unlock()

	s.syncCache(ctx)
	return true
}

func (s *Store) syncCache(ctx context.Context) {
	if s.cache == nil {
		return
	}

	s.mu.RLock()
	snap := models.SessionSnapshot{SessionID: s.sessionID, JobResponse: s.jobResponse}
	s.mu.RUnlock()

	if err := s.cache.Save(ctx, snap); err != nil {
		s.logger.Warn("failed to sync screening cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Navigate forwards a navigation signal on behalf of collaborators that own
// part of a flow (the screening handoff uses it after a commit).
func (s *Store) Navigate(route Route) {
	s.nav.Navigate(route)
}
