package gateway

import (
	"bytes"
	"context"
	"encoding/json"

	"talentreq-client/internal/common/errors"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// SendChat posts a query scoped to a screening session and returns the
// assistant's reply.
func (c *Client) SendChat(ctx context.Context, sessionID, query string) (string, error) {
	const op = "chat"

	payload, err := json.Marshal(chatRequest{SessionID: sessionID, Query: query})
	if err != nil {
		return "", errors.NewSerializationError(op, err)
	}

	body, err := c.post(ctx, op, c.chatBaseURL+"/chat", bytes.NewReader(payload), true)
	if err != nil {
		return "", err
	}

	if err := validatePayload(op, body, chatResponseSchema); err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.NewDeserializationError(op, err)
	}

	return resp.Response, nil
}
