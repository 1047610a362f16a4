// Package chat is the assistant panel's conversation state and send loop.
// The screening session id is read from the session store at send time, so
// every query is implicitly scoped to whichever job was opened last.
package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"talentreq-client/internal/common/errors"
	"talentreq-client/internal/common/logger"
	"talentreq-client/internal/models"
	"talentreq-client/internal/session"
)

const errorReply = "Sorry, I encountered an error. Please try again."

var welcomeMessages = []string{
	"Hello! I'm TalentReq AI, your recruitment assistant. I can help analyze candidates, compare qualifications, and answer job-related questions. What would you like to know about the candidates or position?",
}

// ChatBackend is the slice of the gateway the assistant needs.
type ChatBackend interface {
	SendChat(ctx context.Context, sessionID, query string) (string, error)
}

// Assistant holds the conversation history and sends user queries to the
// chat backend.
type Assistant struct {
	mu       sync.Mutex
	messages []models.ChatMessage

	store   *session.Store
	backend ChatBackend
	logger  logger.Logger
	now     func() time.Time
}

func NewAssistant(store *session.Store, backend ChatBackend, log logger.Logger) *Assistant {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	a := &Assistant{
		store:   store,
		backend: backend,
		logger:  log,
		now:     time.Now,
	}
	for _, msg := range welcomeMessages {
		a.append(models.RoleAssistant, msg)
	}
	return a
}

// Messages returns a copy of the conversation history.
func (a *Assistant) Messages() []models.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.ChatMessage, len(a.messages))
	copy(out, a.messages)
	return out
}

// Send records the user's message, posts it scoped to the current screening
// session, and records the reply. A missing access token or backend failure
// appends the canned error reply and returns the error; the user's own
// message always stays in the history.
func (a *Assistant) Send(ctx context.Context, text string) (string, error) {
	a.append(models.RoleUser, text)

	token, err := a.store.AccessToken()
	if err != nil {
		a.append(models.RoleAssistant, errorReply)
		return "", errors.NewCredentialStoreError("chat", err)
	}
	if token == "" {
		a.logger.Warn("chat send without stored access token", nil)
		a.append(models.RoleAssistant, errorReply)
		return "", errors.NewUnauthenticatedError("chat")
	}

	reply, err := a.backend.SendChat(ctx, a.store.SessionID(), text)
	if err != nil {
		a.logger.Error("chat send failed", map[string]interface{}{"error": err.Error()})
		a.append(models.RoleAssistant, errorReply)
		return "", errors.NewChatSendFailedError(err)
	}

	a.append(models.RoleAssistant, reply)
	return reply, nil
}

func (a *Assistant) append(role models.ChatRole, content string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: a.now(),
	})
}
