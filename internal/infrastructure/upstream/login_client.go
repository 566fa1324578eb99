// Package upstream talks to the identity backend.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// LoginClient performs the username/password round trip against the backend
// login endpoint. It makes exactly one request per call.
type LoginClient struct {
	url        string
	httpClient *http.Client
}

func NewLoginClient(url string, timeout time.Duration) *LoginClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &LoginClient{url: url, httpClient: &http.Client{Timeout: timeout}}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// The backend has answered with each of these field names over time.
type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	Snake       string `json:"access_token"`
}

func (r loginResponse) credential() string {
	switch {
	case r.Token != "":
		return r.Token
	case r.AccessToken != "":
		return r.AccessToken
	}
	return r.Snake
}

// Login returns the credential issued for username. A 401 or 403 maps to
// domain.ErrInvalidCredentials.
func (c *LoginClient) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", domain.ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("login: unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out loginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	credential := out.credential()
	if credential == "" {
		return "", fmt.Errorf("login: response carried no credential")
	}
	return credential, nil
}
