package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"talentreq-client/internal/common/errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type registerResponse struct {
	Message string `json:"message"`
}

// authErrorBody is the backend's error envelope. Login failures arrive under
// the "error message" key, register failures under "detail".
type authErrorBody struct {
	ErrorMessage string `json:"error message"`
	Detail       string `json:"detail"`
}

// Login exchanges credentials for an access token. Failure produces a
// human-readable message: the backend-supplied one when the response body
// carries it, else a generic fallback.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	const op = "login"

	payload, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", errors.NewSerializationError(op, err)
	}

	body, err := c.post(ctx, op, c.authBaseURL+"/login", bytes.NewReader(payload), false)
	if err != nil {
		if stdErr, ok := err.(*errors.StandardError); ok && stdErr.Code == errors.ErrCodeGatewayStatus {
			return "", errors.NewLoginFailedError(extractAuthError(stdErr.Details).ErrorMessage)
		}
		return "", err
	}

	if err := validatePayload(op, body, loginResponseSchema); err != nil {
		return "", err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.NewDeserializationError(op, err)
	}

	c.logger.Info("login succeeded", map[string]interface{}{"email": email})
	return resp.AccessToken, nil
}

// Register creates an account. A duplicate email is reported as a distinct
// error so callers can present it differently from a generic failure.
func (c *Client) Register(ctx context.Context, email, password, name string) error {
	const op = "register"

	payload, err := json.Marshal(registerRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return errors.NewSerializationError(op, err)
	}

	body, err := c.post(ctx, op, c.authBaseURL+"/register", bytes.NewReader(payload), false)
	if err != nil {
		if stdErr, ok := err.(*errors.StandardError); ok && stdErr.Code == errors.ErrCodeGatewayStatus {
			if strings.EqualFold(extractAuthError(stdErr.Details).Detail, "Email already registered") {
				return errors.NewAlreadyRegisteredError(email)
			}
			return errors.NewRegisterFailedError(stdErr.Details)
		}
		return err
	}

	var resp registerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return errors.NewDeserializationError(op, err)
	}

	c.logger.Info("registration succeeded", map[string]interface{}{
		"email":   email,
		"message": resp.Message,
	})
	return nil
}

func extractAuthError(body string) authErrorBody {
	var parsed authErrorBody
	_ = json.Unmarshal([]byte(body), &parsed)
	return parsed
}
